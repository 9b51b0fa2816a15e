package inmemory

import (
	"sync"
	"time"

	catalogdomain "campo-app-go/internal/domain/catalog"
)

type InMemoryCatalogCache struct {
	mu    sync.RWMutex
	units map[string]unitsItem
	crops *cropsItem
}

type unitsItem struct {
	value     []catalogdomain.MeasurementUnit
	expiresAt time.Time
}

type cropsItem struct {
	value     []catalogdomain.CropType
	expiresAt time.Time
}

func NewInMemoryCatalogCache() *InMemoryCatalogCache {
	return &InMemoryCatalogCache{
		units: make(map[string]unitsItem),
	}
}

func (c *InMemoryCatalogCache) GetUnits(key string) ([]catalogdomain.MeasurementUnit, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.units[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.units[key]
		if ok && !item.expiresAt.After(now) {
			delete(c.units, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneUnits(item.value), true
}

func (c *InMemoryCatalogCache) SetUnits(key string, units []catalogdomain.MeasurementUnit, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		delete(c.units, key)
		return
	}
	c.units[key] = unitsItem{
		value:     cloneUnits(units),
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *InMemoryCatalogCache) GetCrops() ([]catalogdomain.CropType, bool) {
	now := time.Now()

	c.mu.RLock()
	item := c.crops
	c.mu.RUnlock()
	if item == nil || !item.expiresAt.After(now) {
		return nil, false
	}

	return append([]catalogdomain.CropType(nil), item.value...), true
}

func (c *InMemoryCatalogCache) SetCrops(crops []catalogdomain.CropType, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ttl <= 0 {
		c.crops = nil
		return
	}
	c.crops = &cropsItem{
		value:     append([]catalogdomain.CropType(nil), crops...),
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *InMemoryCatalogCache) Clear() {
	c.mu.Lock()
	c.units = make(map[string]unitsItem)
	c.crops = nil
	c.mu.Unlock()
}

func cloneUnits(units []catalogdomain.MeasurementUnit) []catalogdomain.MeasurementUnit {
	if units == nil {
		return nil
	}
	cloned := make([]catalogdomain.MeasurementUnit, len(units))
	for i := range units {
		cloned[i] = units[i]
		if units[i].UnitTypeID != nil {
			category := *units[i].UnitTypeID
			cloned[i].UnitTypeID = &category
		}
	}
	return cloned
}
