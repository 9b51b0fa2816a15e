package catalog

import "time"

// Cache holds catalog listings for a short time. Keys are built by the
// service.
type Cache interface {
	GetUnits(key string) ([]MeasurementUnit, bool)
	SetUnits(key string, units []MeasurementUnit, ttl time.Duration)
	GetCrops() ([]CropType, bool)
	SetCrops(crops []CropType, ttl time.Duration)
	Clear()
}

type noopCache struct{}

func (noopCache) GetUnits(string) ([]MeasurementUnit, bool) {
	return nil, false
}

func (noopCache) SetUnits(string, []MeasurementUnit, time.Duration) {}

func (noopCache) GetCrops() ([]CropType, bool) {
	return nil, false
}

func (noopCache) SetCrops([]CropType, time.Duration) {}

func (noopCache) Clear() {}
