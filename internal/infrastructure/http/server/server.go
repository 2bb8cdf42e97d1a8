package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gerai/storefront-service/internal/application/commands"
	"github.com/gerai/storefront-service/internal/application/use_cases"
	"github.com/gerai/storefront-service/internal/config"
	"github.com/gerai/storefront-service/internal/domain/checkout"
	"github.com/gerai/storefront-service/internal/infrastructure/http/handlers"
	"github.com/gerai/storefront-service/internal/infrastructure/persistence/postgres"
	"github.com/gerai/storefront-service/internal/infrastructure/persistence/redis"
	"github.com/gerai/storefront-service/internal/pkg/clock"
	"github.com/gerai/storefront-service/internal/pkg/currency"
	"github.com/gerai/storefront-service/internal/pkg/logger"
)

type Server struct {
	server          *http.Server
	logger          *logger.Logger
	healthHandler   *handlers.HealthHandler
	catalogHandler  *handlers.CatalogHandler
	cartHandler     *handlers.CartHandler
	checkoutHandler *handlers.CheckoutHandler
	adminHandler    *handlers.AdminHandler
}

func NewServer(cfg *config.Config, db *postgres.Connection, redisConn *redis.Connection, log *logger.Logger) *Server {
	productRepo := postgres.NewProductRepository(db)
	cartStorage := redis.NewCartStorage(redisConn, cfg.Store.CartTTL)

	shipping := checkout.ShippingPolicy{
		FreeThreshold: cfg.Store.FreeShippingThreshold,
		FlatFee:       cfg.Store.ShippingFee,
	}
	formatter := currency.NewFormatter(cfg.Store.CurrencyLocale, cfg.Store.CurrencySymbol)

	cartUseCase := use_cases.NewCartUseCase(productRepo, cartStorage, shipping, log)
	checkoutCommand := commands.NewCheckoutHandler(
		cartStorage,
		shipping,
		formatter,
		cfg.Store.WhatsAppBaseURL,
		cfg.Store.WhatsAppNumber,
		log,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		server:          server,
		logger:          log,
		healthHandler:   handlers.NewHealthHandler(db.GetDB(), redisConn.GetClient(), clock.NewRealClock(), log),
		catalogHandler:  handlers.NewCatalogHandler(productRepo, log),
		cartHandler:     handlers.NewCartHandler(cartUseCase, log),
		checkoutHandler: handlers.NewCheckoutHandler(checkoutCommand, log),
		adminHandler:    handlers.NewAdminHandler(productRepo, log),
	}
}

func (s *Server) ListenAndServe() error {
	s.server.Handler = s.setupRoutes()

	s.logger.Info("Starting HTTP server", "address", s.server.Addr)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
