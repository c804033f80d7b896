package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/sumansi/storefront/internal/http"
	"github.com/sumansi/storefront/internal/notify"
	"github.com/sumansi/storefront/internal/service"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/internal/store/drivers/sqlite"
	"github.com/sumansi/storefront/pkg/jwtx"
	"github.com/sumansi/storefront/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the storefront service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	issuer *jwtx.Issuer
	mailer *notify.Mailer

	// Services
	authService         *service.AuthService
	userService         *service.UserService
	productService      *service.ProductService
	announcementService *service.AnnouncementService
	cartService         *service.CartService
	wishlistService     *service.WishlistService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
// It fails fast when either JWT secret is missing; running without them
// would silently break all authentication.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "storefront",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	issuer, err := jwtx.NewIssuer(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.Issuer, cfg.RefreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	app.issuer = issuer

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initMailer(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("storefront service starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down storefront service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("storefront service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer builds the transactional email pipeline.
func (app *Application) initMailer() error {
	sender, err := notify.NewSender(app.cfg.Mail)
	if err != nil {
		return fmt.Errorf("failed to initialize mail sender: %w", err)
	}
	app.mailer = notify.NewMailer(sender, app.logger)
	app.logger.Info("mail provider configured", "provider", app.cfg.Mail.Provider)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:         app.db,
		Issuer:        app.issuer,
		Mailer:        app.mailer,
		ResetURLBase:  app.cfg.ResetURLBase,
		ResetTokenTTL: time.Hour,
	}

	app.userService = &service.UserService{Store: app.db}
	app.productService = &service.ProductService{Store: app.db}
	app.announcementService = &service.AnnouncementService{Store: app.db}
	app.cartService = &service.CartService{Store: app.db}
	app.wishlistService = &service.WishlistService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.issuer,
		app.cfg.Env == "prod",
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.UserService = app.userService
	router.ProductService = app.productService
	router.AnnouncementService = app.announcementService
	router.CartService = app.cartService
	router.WishlistService = app.wishlistService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
