package catalog

// HarvestUnitCategory is the unit type offered on the harvest form.
const HarvestUnitCategory int64 = 4

type MeasurementUnit struct {
	ID         int64  `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	UnitTypeID *int64 `gorm:"column:tipo_unidad_id;index"`
}

func (MeasurementUnit) TableName() string {
	return "Unidades"
}

type CropType struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (CropType) TableName() string {
	return "Cultivos"
}

func categoryPtr(value int64) *int64 {
	return &value
}

// DefaultUnits and DefaultCrops seed an empty database.
var DefaultUnits = []MeasurementUnit{
	{ID: 1, Name: "kg/ha", UnitTypeID: categoryPtr(HarvestUnitCategory)},
	{ID: 2, Name: "qq/ha", UnitTypeID: categoryPtr(HarvestUnitCategory)},
	{ID: 3, Name: "tn/ha", UnitTypeID: categoryPtr(HarvestUnitCategory)},
	{ID: 4, Name: "mm", UnitTypeID: categoryPtr(1)},
	{ID: 5, Name: "ha", UnitTypeID: categoryPtr(2)},
	{ID: 6, Name: "%", UnitTypeID: categoryPtr(3)},
}

var DefaultCrops = []CropType{
	{ID: 1, Name: "Soja"},
	{ID: 2, Name: "Maíz"},
	{ID: 3, Name: "Trigo"},
	{ID: 4, Name: "Girasol"},
	{ID: 5, Name: "Sorgo"},
	{ID: 6, Name: "Cebada"},
}
