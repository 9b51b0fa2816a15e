package plots

import (
	identitydomain "campo-app-go/internal/domain/identity"
	plotsdomain "campo-app-go/internal/domain/plots"
	"campo-app-go/pkg/logger"
)

type Handlers struct {
	Identity *identitydomain.Service
	Plots    *plotsdomain.Service
	log      logger.Logger
}

func New(identity *identitydomain.Service, plots *plotsdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Identity: identity,
		Plots:    plots,
		log:      log,
	}
}
