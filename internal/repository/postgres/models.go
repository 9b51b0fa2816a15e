package postgres

import (
	"campo-app-go/internal/domain/access"
	"campo-app-go/internal/domain/catalog"
	"campo-app-go/internal/domain/fields"
	"campo-app-go/internal/domain/identity"
	"campo-app-go/internal/domain/plots"
	"campo-app-go/internal/domain/records"
)

// Models lists every persisted type in dependency order. It drives sqlite
// AutoMigrate; postgres uses the SQL files under migrations/.
func Models() []any {
	return []any{
		&identity.Connection{},
		&fields.Field{},
		&access.Membership{},
		&fields.Invitation{},
		&plots.Plot{},
		&plots.Campaign{},
		&catalog.MeasurementUnit{},
		&catalog.CropType{},
		&records.Rainfall{},
		&records.Harvest{},
	}
}
