package records

import (
	identitydomain "campo-app-go/internal/domain/identity"
	recordsdomain "campo-app-go/internal/domain/records"
	"campo-app-go/pkg/logger"
)

type Handlers struct {
	Identity *identitydomain.Service
	Records  *recordsdomain.Service
	log      logger.Logger
}

func New(identity *identitydomain.Service, records *recordsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity: identity,
		Records:  records,
		log:      log,
	}
}
