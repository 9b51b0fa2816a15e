package records

import (
	"context"

	"campo-app-go/internal/domain/access"
)

type Repository interface {
	ListPlotIDsByFields(ctx context.Context, fieldIDs []string) ([]string, error)
	ListCampaignIDsByPlots(ctx context.Context, plotIDs []string) ([]string, error)
	GetCampaignRef(ctx context.Context, campaignID string) (*CampaignRef, error)
	ListRainfallByFields(ctx context.Context, fieldIDs []string, limit int) ([]RainfallView, error)
	ListHarvestsByCampaigns(ctx context.Context, campaignIDs []string, limit int) ([]HarvestView, error)
	CreateRainfall(ctx context.Context, record *Rainfall) error
	CreateHarvest(ctx context.Context, record *Harvest) error
	DeleteRainfall(ctx context.Context, id string) error
	DeleteHarvest(ctx context.Context, id string) error
}

type Authorizer interface {
	AuthorizeField(ctx context.Context, userID, fieldID string, minRole access.Role) error
	AuthorizeCampaign(ctx context.Context, userID, campaignID string) (string, error)
	AuthorizeRainfall(ctx context.Context, userID, recordID string) (string, error)
	AuthorizeHarvest(ctx context.Context, userID, recordID string) (string, error)
	ListFieldIDs(ctx context.Context, userID string) ([]string, error)
}
