// Package server assembles the contacts API: storage, services and the HTTP
// transport, and runs them until a termination signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/config"
	"github.com/dmitrijs2005/contactkeeper/internal/server/hash"
	"github.com/dmitrijs2005/contactkeeper/internal/server/reporting"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactkeeper/internal/server/rest"
	"github.com/dmitrijs2005/contactkeeper/internal/server/services"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    repomanager.RepositoryManager
	reporter *reporting.Reporter
	server   *rest.Server
}

// NewApp opens storage, applies migrations and wires the HTTP server.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := store.RunMigrations(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	reporter, err := reporting.New(c.SentryDSN, c.SentryEnvironment)
	if err != nil {
		logger.Warn(ctx, "sentry disabled", "error", err)
		reporter = &reporting.Reporter{}
	}

	issuer := auth.NewIssuer([]byte(c.SecretKey), c.TokenValidityDuration)
	hasher := hash.NewHasher(c.BcryptCost)

	srv := rest.NewServer(c.HTTPAddr, logger, rest.Dependencies{
		Users:    services.NewUserService(store, hasher, issuer),
		Contacts: services.NewContactService(store),
		Tokens:   issuer,
		Store:    store,
		Reporter: reporter,
	})

	return &App{config: c, logger: logger, store: store, reporter: reporter, server: srv}, nil
}

func openStore(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	if c.Storage == config.StorageMemory {
		return repomanager.NewMemoryRepositoryManager(), nil
	}
	return repomanager.OpenPostgres(ctx, c.DatabaseDSN)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until ctx is cancelled or a termination signal is received.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)
	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)

	app.reporter.Flush(2 * time.Second)
	if cerr := app.store.Close(); cerr != nil {
		app.logger.Warn(ctx, "closing store", "error", cerr)
	}
	return err
}
