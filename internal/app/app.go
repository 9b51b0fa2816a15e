package app

import (
	"context"
	"fmt"
	"net/http"

	"campo-app-go/internal/auth"
	"campo-app-go/internal/config"
	"campo-app-go/internal/db"
	"campo-app-go/internal/repository/inmemory"
	"campo-app-go/internal/repository/postgres"
	catalogrepo "campo-app-go/internal/repository/postgres/catalog"
	"campo-app-go/internal/transport/httpserver"
	"campo-app-go/internal/transport/httpserver/handler"
	"campo-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn, postgres.Models()...); err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := catalogrepo.NewPostgres(dbConn).Seed(ctx); err != nil {
		closeDB(dbConn)
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	if cfg.Supabase.URL == "" || cfg.Supabase.AnonKey == "" {
		log.Warn("app: supabase auth not configured, /api/telegram/auth will fail")
	}
	services := NewServices(dbConn, auth.NewGoTrueClient(cfg.Supabase))
	services.Catalog.WithCache(inmemory.NewInMemoryCatalogCache(), cfg.CatalogCacheTTL)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handler.New(services, log))

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(conn *gorm.DB) {
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
