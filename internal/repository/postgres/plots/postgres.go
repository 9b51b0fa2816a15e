package plots

import (
	"context"

	plotsdomain "campo-app-go/internal/domain/plots"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPlotsByField(ctx context.Context, fieldID string) ([]plotsdomain.Plot, error) {
	var plots []plotsdomain.Plot
	if err := r.db.WithContext(ctx).
		Where("campo_id = ?", fieldID).
		Order("name asc").
		Find(&plots).Error; err != nil {
		return nil, err
	}
	return plots, nil
}

func (r *PostgresRepository) CreatePlot(ctx context.Context, plot *plotsdomain.Plot) error {
	return r.db.WithContext(ctx).Create(plot).Error
}

// ListCampaignsByPlot returns campaigns unordered; the service sorts them by
// season.
func (r *PostgresRepository) ListCampaignsByPlot(ctx context.Context, plotID string) ([]plotsdomain.Campaign, error) {
	var campaigns []plotsdomain.Campaign
	if err := r.db.WithContext(ctx).
		Where("lote_id = ?", plotID).
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *PostgresRepository) CreateCampaign(ctx context.Context, campaign *plotsdomain.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}
