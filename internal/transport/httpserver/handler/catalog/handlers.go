package catalog

import (
	catalogdomain "campo-app-go/internal/domain/catalog"
	fieldsdomain "campo-app-go/internal/domain/fields"
	identitydomain "campo-app-go/internal/domain/identity"
	"campo-app-go/pkg/logger"
)

type Handlers struct {
	Identity *identitydomain.Service
	Catalog  *catalogdomain.Service
	Fields   *fieldsdomain.Service
	log      logger.Logger
}

func New(identity *identitydomain.Service, catalog *catalogdomain.Service, fields *fieldsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity: identity,
		Catalog:  catalog,
		Fields:   fields,
		log:      log,
	}
}
