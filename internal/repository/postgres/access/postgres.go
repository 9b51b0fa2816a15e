package access

import (
	"context"
	"errors"

	accessdomain "campo-app-go/internal/domain/access"
	"campo-app-go/internal/domain/plots"
	"campo-app-go/internal/domain/records"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetMembership(ctx context.Context, userID, fieldID string) (*accessdomain.Membership, error) {
	var member accessdomain.Membership
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND campo_id = ?", userID, fieldID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accessdomain.ErrMembershipNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *PostgresRepository) ListFieldIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&accessdomain.Membership{}).
		Where("user_id = ?", userID).
		Pluck("campo_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) GetPlotFieldID(ctx context.Context, plotID string) (string, error) {
	query := r.db.WithContext(ctx).
		Model(&plots.Plot{}).
		Where("id = ?", plotID)
	return firstFieldID(query, "campo_id", accessdomain.ErrPlotNotFound)
}

func (r *PostgresRepository) GetCampaignFieldID(ctx context.Context, campaignID string) (string, error) {
	query := r.db.WithContext(ctx).
		Model(&plots.Campaign{}).
		Joins(`join "Lotes" on "Lotes".id = "Campañas".lote_id`).
		Where(`"Campañas".id = ?`, campaignID)
	return firstFieldID(query, `"Lotes".campo_id`, accessdomain.ErrCampaignNotFound)
}

func (r *PostgresRepository) GetRainfallFieldID(ctx context.Context, recordID string) (string, error) {
	query := r.db.WithContext(ctx).
		Model(&records.Rainfall{}).
		Where("id = ?", recordID)
	return firstFieldID(query, "campo_id", accessdomain.ErrRainfallNotFound)
}

func (r *PostgresRepository) GetHarvestFieldID(ctx context.Context, recordID string) (string, error) {
	query := r.db.WithContext(ctx).
		Model(&records.Harvest{}).
		Joins(`join "Campañas" on "Campañas".id = "Cosechas".campana_id`).
		Joins(`join "Lotes" on "Lotes".id = "Campañas".lote_id`).
		Where(`"Cosechas".id = ?`, recordID)
	return firstFieldID(query, `"Lotes".campo_id`, accessdomain.ErrHarvestNotFound)
}

// firstFieldID plucks one field id; an empty result means a broken chain.
func firstFieldID(query *gorm.DB, column string, notFound error) (string, error) {
	var ids []string
	if err := query.Limit(1).Pluck(column, &ids).Error; err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", notFound
	}
	return ids[0], nil
}
