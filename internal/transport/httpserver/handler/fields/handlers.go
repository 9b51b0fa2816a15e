package fields

import (
	fieldsdomain "campo-app-go/internal/domain/fields"
	identitydomain "campo-app-go/internal/domain/identity"
	"campo-app-go/pkg/logger"
)

type Handlers struct {
	Identity *identitydomain.Service
	Fields   *fieldsdomain.Service
	log      logger.Logger
}

func New(identity *identitydomain.Service, fields *fieldsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity: identity,
		Fields:   fields,
		log:      log,
	}
}
