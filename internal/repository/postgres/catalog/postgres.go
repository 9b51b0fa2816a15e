package catalog

import (
	"context"

	catalogdomain "campo-app-go/internal/domain/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListUnits(ctx context.Context, categoryID *int64) ([]catalogdomain.MeasurementUnit, error) {
	query := r.db.WithContext(ctx).Order("id asc")
	if categoryID != nil {
		query = query.Where("tipo_unidad_id = ?", *categoryID)
	}

	var units []catalogdomain.MeasurementUnit
	if err := query.Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *PostgresRepository) ListCrops(ctx context.Context) ([]catalogdomain.CropType, error) {
	var crops []catalogdomain.CropType
	if err := r.db.WithContext(ctx).Order("name asc").Find(&crops).Error; err != nil {
		return nil, err
	}
	return crops, nil
}

// Seed inserts the default units and crops, leaving existing ids untouched.
func (r *PostgresRepository) Seed(ctx context.Context) error {
	units := append([]catalogdomain.MeasurementUnit(nil), catalogdomain.DefaultUnits...)
	crops := append([]catalogdomain.CropType(nil), catalogdomain.DefaultCrops...)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&units).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&crops).Error
	})
}
