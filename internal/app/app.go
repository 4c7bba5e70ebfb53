package app

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"verba/internal/config"
	"verba/internal/services"
	"verba/internal/store"
	"verba/internal/store/postgres"
	"verba/internal/store/sqlite"
)

// App wires the configured store, job client, and services together. One
// instance is built per process and handed to commands via context.
type App struct {
	Config    *config.Config
	PostStore store.PostStore
	JobClient store.JobClient

	PostService *services.PostService
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	app := &App{Config: cfg}

	if err := app.initPostStore(ctx); err != nil {
		return nil, err
	}
	app.initJobClient()
	app.PostService = services.NewPostService(app.PostStore)

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initPostStore(ctx context.Context) error {
	cfg := a.Config
	switch cfg.Database.Driver {
	case "postgres":
		ps, err := postgres.New(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("init postgres post store: %w", err)
		}
		a.PostStore = ps
	case "sqlite", "":
		ss, err := sqlite.New(cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("init sqlite post store: %w", err)
		}
		if err := ss.InitSchema(ctx); err != nil {
			ss.Close()
			return fmt.Errorf("init sqlite schema: %w", err)
		}
		a.PostStore = ss
	default:
		return fmt.Errorf("unknown database driver %q (expected postgres or sqlite)", cfg.Database.Driver)
	}
	return nil
}

func (a *App) initJobClient() {
	a.JobClient = store.NewAsynqJobClient(asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
}

// Close releases the store and job client handles.
func (a *App) Close() {
	if a.JobClient != nil {
		if err := a.JobClient.Close(); err != nil {
			log.WithError(err).Warn("closing job client")
		}
	}
	if a.PostStore != nil {
		if err := a.PostStore.Close(); err != nil {
			log.WithError(err).Warn("closing post store")
		}
	}
}
