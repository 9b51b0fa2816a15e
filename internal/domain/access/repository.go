package access

import "context"

// Repository resolves ownership chains. The Get*FieldID methods return the
// matching Err*NotFound when the entity or any link of its chain is missing.
type Repository interface {
	GetMembership(ctx context.Context, userID, fieldID string) (*Membership, error)
	ListFieldIDsByUser(ctx context.Context, userID string) ([]string, error)
	GetPlotFieldID(ctx context.Context, plotID string) (string, error)
	GetCampaignFieldID(ctx context.Context, campaignID string) (string, error)
	GetRainfallFieldID(ctx context.Context, recordID string) (string, error)
	GetHarvestFieldID(ctx context.Context, recordID string) (string, error)
}
