package httpserver

import (
	"net/http"
	"time"

	"campo-app-go/internal/config"
)

const writeTimeoutSlack = 5 * time.Second

func New(cfg config.Config, handler http.Handler) *http.Server {
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	// The router's Timeout middleware answers first; the write deadline only
	// catches handlers that ignore their context.
	if cfg.RequestTimeout > 0 {
		srv.WriteTimeout = cfg.RequestTimeout + writeTimeoutSlack
	}
	return srv
}
