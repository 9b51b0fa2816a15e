package catalog

import "context"

type Repository interface {
	ListUnits(ctx context.Context, categoryID *int64) ([]MeasurementUnit, error)
	ListCrops(ctx context.Context) ([]CropType, error)
}
