package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/paygate-app/paygate/infra"
	checkoutrepo "github.com/paygate-app/paygate/infra/repository/checkout"
	checkoutsvc "github.com/paygate-app/paygate/pkg/checkout"
	"github.com/paygate-app/paygate/pkg/config"
	"github.com/paygate-app/paygate/pkg/eventbus"
	"github.com/paygate-app/paygate/pkg/stripeapi"
	"github.com/paygate-app/paygate/webapi"
)

// @title Paygate API
// @version 1.0.0
// @description Payment gateway API documentation
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&checkoutrepo.Session{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	providerClient := stripeapi.New(cfg.PaymentProviders.Stripe, logger)
	repo := checkoutrepo.NewRepository(db)
	bus := eventbus.NewSimpleEventBus()
	svc := checkoutsvc.New(
		providerClient,
		repo,
		bus,
		cfg.PaymentProviders.Stripe,
		cfg.BaseURL,
		logger,
	)

	fiberApp := webapi.SetupApp(webapi.Deps{
		CheckoutService: svc,
		Config:          cfg,
		Logger:          logger,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Scheme,
	)

	return fiberApp.Listen(addr)
}
