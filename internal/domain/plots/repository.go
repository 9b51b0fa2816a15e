package plots

import (
	"context"

	"campo-app-go/internal/domain/access"
)

type Repository interface {
	ListPlotsByField(ctx context.Context, fieldID string) ([]Plot, error)
	CreatePlot(ctx context.Context, plot *Plot) error
	ListCampaignsByPlot(ctx context.Context, plotID string) ([]Campaign, error)
	CreateCampaign(ctx context.Context, campaign *Campaign) error
}

type Authorizer interface {
	AuthorizeField(ctx context.Context, userID, fieldID string, minRole access.Role) error
	AuthorizePlot(ctx context.Context, userID, plotID string) (string, error)
}
