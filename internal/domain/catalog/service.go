package catalog

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cache: noopCache{}}
}

// WithCache serves listings from cache for ttl. A non-positive ttl disables
// caching.
func (s *Service) WithCache(cache Cache, ttl time.Duration) *Service {
	if cache == nil || ttl <= 0 {
		s.cache = noopCache{}
		s.cacheTTL = 0
		return s
	}
	s.cache = cache
	s.cacheTTL = ttl
	return s
}

// ListUnits returns units ordered by id, restricted to one unit type when
// categoryID is set.
func (s *Service) ListUnits(ctx context.Context, categoryID *int64) ([]MeasurementUnit, error) {
	key := unitsKey(categoryID)
	if units, ok := s.cache.GetUnits(key); ok {
		return units, nil
	}

	units, err := s.repo.ListUnits(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	if units == nil {
		units = []MeasurementUnit{}
	}
	s.cache.SetUnits(key, units, s.cacheTTL)
	return units, nil
}

func (s *Service) ListHarvestUnits(ctx context.Context) ([]MeasurementUnit, error) {
	category := HarvestUnitCategory
	return s.ListUnits(ctx, &category)
}

func (s *Service) ListCrops(ctx context.Context) ([]CropType, error) {
	if crops, ok := s.cache.GetCrops(); ok {
		return crops, nil
	}

	crops, err := s.repo.ListCrops(ctx)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	if crops == nil {
		crops = []CropType{}
	}
	s.cache.SetCrops(crops, s.cacheTTL)
	return crops, nil
}

func unitsKey(categoryID *int64) string {
	if categoryID == nil {
		return "all"
	}
	return strconv.FormatInt(*categoryID, 10)
}
