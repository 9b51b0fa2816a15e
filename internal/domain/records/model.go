package records

import "time"

// ListLimit caps every record listing.
const ListLimit = 20

// Rainfall belongs directly to a field. The observation time is stored in
// created_at as supplied by the client.
type Rainfall struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	FieldID     string    `gorm:"column:campo_id;type:uuid;not null;index"`
	Millimeters float64   `gorm:"column:milimetros;not null"`
	ObservedAt  time.Time `gorm:"column:created_at;not null"`
}

func (Rainfall) TableName() string {
	return "Lluvias"
}

type Harvest struct {
	ID         string    `gorm:"type:uuid;primaryKey"`
	CampaignID string    `gorm:"column:campana_id;type:uuid;not null;index"`
	UnitID     int64     `gorm:"column:unidad_id;not null"`
	Yield      float64   `gorm:"column:rendimiento;not null"`
	Moisture   *float64  `gorm:"column:humedad"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

func (Harvest) TableName() string {
	return "Cosechas"
}

type RainfallView struct {
	ID          string
	FieldID     string
	FieldName   string
	Millimeters float64
	ObservedAt  time.Time
}

type HarvestView struct {
	ID           string
	CampaignID   string
	CampaignName string
	PlotName     string
	FieldName    string
	UnitID       int64
	UnitName     string
	Yield        float64
	Moisture     *float64
	CreatedAt    time.Time
}

type CampaignRef struct {
	ID   string
	Name string
}

type CreateRainfallInput struct {
	FieldID     string
	ObservedAt  time.Time
	Millimeters float64
}

type CreateHarvestInput struct {
	CampaignID string
	Yield      float64
	UnitID     int64
	Moisture   *float64
}

type HarvestList struct {
	Harvests []HarvestView
	// Campaign is set only for a campaign-scoped listing.
	Campaign *CampaignRef
}
