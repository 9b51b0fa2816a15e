package httpserver

import (
	"net/http"

	"campo-app-go/internal/config"
	"campo-app-go/internal/transport/httpserver/handler"
	"campo-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	r.Use(middleware.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		r.Route("/telegram", func(r chi.Router) {
			r.Post("/auth", handlers.Common.Auth)
			r.Post("/check", handlers.Common.Check)

			r.Post("/fields", handlers.Fields.ListFields)
			r.Post("/fields/create", handlers.Fields.CreateField)
			r.Post("/fields/join", handlers.Fields.JoinField)
			r.Post("/fields/members", handlers.Fields.ListMembers)
			r.Post("/invitations", handlers.Fields.CreateInvitation)

			r.Post("/plots", handlers.Plots.ListPlots)
			r.Post("/plots/create", handlers.Plots.CreatePlot)
			r.Post("/campaigns", handlers.Plots.ListCampaigns)
			r.Post("/campaigns/create", handlers.Plots.CreateCampaign)

			r.Post("/rainfall", handlers.Records.CreateRainfall)
			r.Get("/rainfall", handlers.Records.ListRainfall)
			r.Delete("/rainfall/{id}", handlers.Records.DeleteRainfall)
			r.Post("/harvests", handlers.Records.CreateHarvest)
			r.Get("/harvests", handlers.Records.ListHarvests)
			r.Delete("/harvests/{id}", handlers.Records.DeleteHarvest)

			r.Post("/crops", handlers.Catalog.ListCrops)
			r.Post("/units", handlers.Catalog.ListUnits)
			r.Post("/forms/harvest", handlers.Catalog.HarvestForm)
			r.Post("/forms/campaign", handlers.Catalog.CampaignForm)
		})
	})

	return r
}
