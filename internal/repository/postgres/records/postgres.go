package records

import (
	"context"
	"errors"
	"time"

	"campo-app-go/internal/domain/access"
	"campo-app-go/internal/domain/plots"
	recordsdomain "campo-app-go/internal/domain/records"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPlotIDsByFields(ctx context.Context, fieldIDs []string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&plots.Plot{}).
		Where("campo_id IN ?", fieldIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) ListCampaignIDsByPlots(ctx context.Context, plotIDs []string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).
		Model(&plots.Campaign{}).
		Where("lote_id IN ?", plotIDs).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) GetCampaignRef(ctx context.Context, campaignID string) (*recordsdomain.CampaignRef, error) {
	var campaign plots.Campaign
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id = ?", campaignID).
		First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, access.ErrCampaignNotFound
		}
		return nil, err
	}
	return &recordsdomain.CampaignRef{ID: campaign.ID, Name: campaign.Name}, nil
}

func (r *PostgresRepository) ListRainfallByFields(ctx context.Context, fieldIDs []string, limit int) ([]recordsdomain.RainfallView, error) {
	type rainfallRow struct {
		ID          string    `gorm:"column:id"`
		FieldID     string    `gorm:"column:campo_id"`
		FieldName   string    `gorm:"column:field_name"`
		Millimeters float64   `gorm:"column:milimetros"`
		ObservedAt  time.Time `gorm:"column:created_at"`
	}

	var rows []rainfallRow
	if err := r.db.WithContext(ctx).
		Model(&recordsdomain.Rainfall{}).
		Select(`"Lluvias".id, "Lluvias".campo_id, "Campos".name as field_name, "Lluvias".milimetros, "Lluvias".created_at`).
		Joins(`left join "Campos" on "Campos".id = "Lluvias".campo_id`).
		Where(`"Lluvias".campo_id IN ?`, fieldIDs).
		Order(`"Lluvias".created_at desc`).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]recordsdomain.RainfallView, 0, len(rows))
	for _, row := range rows {
		result = append(result, recordsdomain.RainfallView{
			ID:          row.ID,
			FieldID:     row.FieldID,
			FieldName:   row.FieldName,
			Millimeters: row.Millimeters,
			ObservedAt:  row.ObservedAt,
		})
	}
	return result, nil
}

func (r *PostgresRepository) ListHarvestsByCampaigns(ctx context.Context, campaignIDs []string, limit int) ([]recordsdomain.HarvestView, error) {
	type harvestRow struct {
		ID           string    `gorm:"column:id"`
		CampaignID   string    `gorm:"column:campana_id"`
		CampaignName string    `gorm:"column:campaign_name"`
		PlotName     string    `gorm:"column:plot_name"`
		FieldName    string    `gorm:"column:field_name"`
		UnitID       int64     `gorm:"column:unidad_id"`
		UnitName     *string   `gorm:"column:unit_name"`
		Yield        float64   `gorm:"column:rendimiento"`
		Moisture     *float64  `gorm:"column:humedad"`
		CreatedAt    time.Time `gorm:"column:created_at"`
	}

	var rows []harvestRow
	if err := r.db.WithContext(ctx).
		Model(&recordsdomain.Harvest{}).
		Select(`"Cosechas".id, "Cosechas".campana_id, "Campañas".name as campaign_name, "Lotes".name as plot_name, "Campos".name as field_name, "Cosechas".unidad_id, "Unidades".name as unit_name, "Cosechas".rendimiento, "Cosechas".humedad, "Cosechas".created_at`).
		Joins(`join "Campañas" on "Campañas".id = "Cosechas".campana_id`).
		Joins(`join "Lotes" on "Lotes".id = "Campañas".lote_id`).
		Joins(`join "Campos" on "Campos".id = "Lotes".campo_id`).
		Joins(`left join "Unidades" on "Unidades".id = "Cosechas".unidad_id`).
		Where(`"Cosechas".campana_id IN ?`, campaignIDs).
		Order(`"Cosechas".created_at desc`).
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]recordsdomain.HarvestView, 0, len(rows))
	for _, row := range rows {
		view := recordsdomain.HarvestView{
			ID:           row.ID,
			CampaignID:   row.CampaignID,
			CampaignName: row.CampaignName,
			PlotName:     row.PlotName,
			FieldName:    row.FieldName,
			UnitID:       row.UnitID,
			Yield:        row.Yield,
			Moisture:     row.Moisture,
			CreatedAt:    row.CreatedAt,
		}
		if row.UnitName != nil {
			view.UnitName = *row.UnitName
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *PostgresRepository) CreateRainfall(ctx context.Context, record *recordsdomain.Rainfall) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) CreateHarvest(ctx context.Context, record *recordsdomain.Harvest) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *PostgresRepository) DeleteRainfall(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&recordsdomain.Rainfall{}).Error
}

func (r *PostgresRepository) DeleteHarvest(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&recordsdomain.Harvest{}).Error
}
