package handler

import (
	catalogdomain "campo-app-go/internal/domain/catalog"
	fieldsdomain "campo-app-go/internal/domain/fields"
	identitydomain "campo-app-go/internal/domain/identity"
	plotsdomain "campo-app-go/internal/domain/plots"
	recordsdomain "campo-app-go/internal/domain/records"
	cataloghandler "campo-app-go/internal/transport/httpserver/handler/catalog"
	commonhandler "campo-app-go/internal/transport/httpserver/handler/common"
	fieldshandler "campo-app-go/internal/transport/httpserver/handler/fields"
	plotshandler "campo-app-go/internal/transport/httpserver/handler/plots"
	recordshandler "campo-app-go/internal/transport/httpserver/handler/records"
	"campo-app-go/pkg/logger"
)

type Handlers struct {
	Common  *commonhandler.Handlers
	Fields  *fieldshandler.Handlers
	Plots   *plotshandler.Handlers
	Records *recordshandler.Handlers
	Catalog *cataloghandler.Handlers
}

type Services struct {
	Identity *identitydomain.Service
	Fields   *fieldsdomain.Service
	Plots    *plotsdomain.Service
	Records  *recordsdomain.Service
	Catalog  *catalogdomain.Service
}

func New(services Services, log logger.Logger) *Handlers {
	return &Handlers{
		Common:  commonhandler.New(services.Identity, log),
		Fields:  fieldshandler.New(services.Identity, services.Fields, log),
		Plots:   plotshandler.New(services.Identity, services.Plots, log),
		Records: recordshandler.New(services.Identity, services.Records, log),
		Catalog: cataloghandler.New(services.Identity, services.Catalog, services.Fields, log),
	}
}
