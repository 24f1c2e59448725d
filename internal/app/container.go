package app

import (
	"context"
	"log"
	"time"

	"github.com/Knocktern/Job-Matching-System/internal/config"
	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/database/migration"
	dbpostgres "github.com/Knocktern/Job-Matching-System/internal/database/postgres"
	"github.com/Knocktern/Job-Matching-System/internal/infrastructure/cache"
	"github.com/Knocktern/Job-Matching-System/internal/ws"
)

// Container holds the process-wide dependencies: the database pool, the
// optional redis client and the websocket hub.
type Container struct {
	Config config.Config
	DB     database.DB
	Redis  *cache.Redis
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.RunMigrations {
		if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  cache.NewRedis(logger),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
