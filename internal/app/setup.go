// Package app contains the application setup for the catalog service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/ecomshop/catalog/internal/config"
	"github.com/ecomshop/catalog/internal/service"
	"github.com/ecomshop/catalog/internal/store"
	"github.com/ecomshop/catalog/internal/transport/rest"
	"github.com/ecomshop/catalog/internal/upload"
	"github.com/ecomshop/catalog/pkg/server"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds everything the transport layer needs. All of it is
// created once at startup and injected; there is no global state.
type Dependencies struct {
	ProductService service.ProductService
	Uploader       upload.Uploader
	Logger         *slog.Logger
}

func SetupDependencies(dbPool *pgxpool.Pool, uploader upload.Uploader, logger *slog.Logger) *Dependencies {
	pService := service.NewService(store.NewPgStore(dbPool))

	return &Dependencies{
		ProductService: pService,
		Uploader:       uploader,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the router and routes for the catalog service.
// Also used by tests to run the full handler in an httptest server.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	productHandler := rest.NewHandler(deps.ProductService, deps.Uploader, deps.Logger)
	productHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures an HTTP server for the catalog service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
