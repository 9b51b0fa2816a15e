package app

import (
	"campo-app-go/internal/domain/access"
	"campo-app-go/internal/domain/catalog"
	"campo-app-go/internal/domain/fields"
	"campo-app-go/internal/domain/identity"
	"campo-app-go/internal/domain/plots"
	"campo-app-go/internal/domain/records"
	accessrepo "campo-app-go/internal/repository/postgres/access"
	catalogrepo "campo-app-go/internal/repository/postgres/catalog"
	fieldsrepo "campo-app-go/internal/repository/postgres/fields"
	identityrepo "campo-app-go/internal/repository/postgres/identity"
	plotsrepo "campo-app-go/internal/repository/postgres/plots"
	recordsrepo "campo-app-go/internal/repository/postgres/records"
	"campo-app-go/internal/transport/httpserver/handler"
	"gorm.io/gorm"
)

// NewServices builds every domain service over one database handle.
func NewServices(db *gorm.DB, authn identity.Authenticator) handler.Services {
	authz := access.NewService(accessrepo.NewPostgres(db))

	return handler.Services{
		Identity: identity.NewService(identityrepo.NewPostgres(db), authn),
		Fields:   fields.NewService(fieldsrepo.NewPostgres(db), authz),
		Plots:    plots.NewService(plotsrepo.NewPostgres(db), authz),
		Records:  records.NewService(recordsrepo.NewPostgres(db), authz),
		Catalog:  catalog.NewService(catalogrepo.NewPostgres(db)),
	}
}
