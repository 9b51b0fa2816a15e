package plots

import "time"

type Plot struct {
	ID      string  `gorm:"type:uuid;primaryKey"`
	FieldID string  `gorm:"column:campo_id;type:uuid;not null;index"`
	Name    string  `gorm:"not null"`
	Area    float64 `gorm:"column:ha;not null"`
}

func (Plot) TableName() string {
	return "Lotes"
}

// Campaign names conventionally end with the season, e.g. "Soja 24/25".
type Campaign struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	PlotID    string    `gorm:"column:lote_id;type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Campaign) TableName() string {
	return "Campañas"
}
