// Package app wires configuration, storage, the API client, the store and
// the orchestration services into one embeddable unit, and exposes thin
// delegate methods so callers never touch service internals.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/action"
	"storefront/internal/analytics"
	"storefront/internal/api"
	"storefront/internal/config"
	"storefront/internal/service"
	"storefront/internal/storage"
	"storefront/internal/store"
)

// App is the assembled storefront orchestration layer.
type App struct {
	ctx context.Context
	cfg config.Config

	db       *storage.DB
	recorder *analytics.Recorder
	track    analytics.Tracker
	emitter  service.EventEmitter

	api   *api.Client
	store *store.Store

	catalog *service.CatalogService
	cart    *service.CartService
	session *service.SessionService

	stopWatch func()
	logger    *slog.Logger
}

// Option configures an App before startup.
type Option func(*App)

// WithEmitter attaches the presentation layer's event emitter.
func WithEmitter(e service.EventEmitter) Option {
	return func(a *App) { a.emitter = e }
}

// WithTracker overrides the analytics sink (tests, alternate transports).
func WithTracker(t analytics.Tracker) Option {
	return func(a *App) { a.track = t }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.logger = l }
}

// New creates an App from config. Nothing is opened until Startup.
func New(cfg config.Config, opts ...Option) *App {
	a := &App{
		cfg:     cfg,
		emitter: service.NopEmitter{},
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Startup opens the analytics store, builds the API client and state
// container, preloads the category tree and constructs the services.
func (a *App) Startup(ctx context.Context) error {
	a.ctx = ctx

	if a.track == nil {
		if a.cfg.Analytics.Enabled {
			db, err := storage.Open(a.cfg.Analytics.DBPath)
			if err != nil {
				return fmt.Errorf("open analytics store: %w", err)
			}
			a.db = db
			a.recorder = analytics.NewRecorder(
				storage.NewEventStore(db),
				analytics.WithRetention(a.cfg.Analytics.RetentionDays, a.cfg.Analytics.CleanupSchedule),
			)
			a.track = a.recorder
		} else {
			a.track = analytics.NewLog(a.logger)
		}
	}

	a.api = api.New(a.cfg.API.BaseURL, a.cfg.API.Token, time.Duration(a.cfg.API.TimeoutSeconds)*time.Second)

	// Preload the category tree used for local page resolution. A failure
	// degrades to remote-only resolution instead of blocking startup.
	categories, err := a.api.ListCategories(ctx)
	if err != nil {
		a.logger.Warn("category preload failed, falling back to remote resolution", "error", err)
	}

	a.store = store.New(store.NewState(a.cfg.Store, categories))

	a.catalog = service.NewCatalogService(a.store, a.api, a.track, a.emitter, a.logger)
	a.cart = service.NewCartService(a.store, a.api, a.track, a.logger)
	a.session = service.NewSessionService(a.store, a.api, a.logger)
	return nil
}

// WatchConfig hot-reloads store settings when the config file changes.
func (a *App) WatchConfig(path string) error {
	stop, err := config.Watch(a.ctx, path, func(c config.Config) {
		a.store.Dispatch(action.ReceiveSettings(c.Store))
	})
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	a.stopWatch = stop
	return nil
}

// Shutdown releases everything Startup opened.
func (a *App) Shutdown() {
	if a.stopWatch != nil {
		a.stopWatch()
	}
	if a.recorder != nil {
		a.recorder.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close analytics store", "error", err)
		}
	}
}

// State returns the current state snapshot.
func (a *App) State() store.AppState {
	return a.store.State()
}

// Store exposes the state container to the embedding layer (subscription,
// devtools).
func (a *App) Store() *store.Store {
	return a.store
}
