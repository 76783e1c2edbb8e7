package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"photo-backend/internal/photos"
	"photo-backend/internal/queue"
	"photo-backend/internal/shared/config"
	"photo-backend/internal/shared/server"
	"photo-backend/internal/shared/storage/blob"
	memblob "photo-backend/internal/shared/storage/blob/memory"
	s3blob "photo-backend/internal/shared/storage/blob/s3"
	"photo-backend/internal/shared/storage/db"
)

// App holds shared dependencies wired from configuration. Store clients are
// constructed once here and handed to services explicitly so tests can
// substitute fakes.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Blobs   blob.Store
	Repo    photos.Repo
	Janitor queue.Client

	PhotosService *photos.Service
	PhotosHandler *photos.Handler
}

// Build prepares shared dependencies and the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	blobs, err := buildBlobs(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, repo, err := buildRepo(ctx, cfg)
	if err != nil {
		return nil, err
	}

	janitor, err := buildJanitor(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &photos.Service{
		Blobs:         blobs,
		Repo:          repo,
		Janitor:       janitor,
		URLExpiration: time.Duration(cfg.URLExpirationSeconds) * time.Second,
	}
	handler := photos.NewHandler(svc)

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		Blobs:         blobs,
		Repo:          repo,
		Janitor:       janitor,
		PhotosService: svc,
		PhotosHandler: handler,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		PhotosHandler: handler,
	})

	return app, nil
}

func buildBlobs(ctx context.Context, cfg config.Config) (blob.Store, error) {
	switch cfg.BlobStoreType {
	case "s3":
		store, err := s3blob.New(ctx, cfg.AWSRegion, cfg.PhotosBucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("build s3 blob store: %w", err)
		}
		return store, nil
	default:
		if cfg.Env == "production" {
			return nil, fmt.Errorf("BLOB_STORE=s3 and PHOTOS_BUCKET are required in production")
		}
		return memblob.New(), nil
	}
}

func buildRepo(ctx context.Context, cfg config.Config) (*sql.DB, photos.Repo, error) {
	switch cfg.RecordStoreType {
	case "dynamo":
		repo, err := photos.NewDynamoRepo(ctx, cfg.AWSRegion, cfg.PhotosTable)
		if err != nil {
			return nil, nil, fmt.Errorf("build dynamo repo: %w", err)
		}
		return nil, repo, nil
	case "postgres":
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
		return sqlDB, &photos.PGRepo{DB: sqlDB}, nil
	default:
		if cfg.Env == "production" {
			return nil, nil, fmt.Errorf("RECORD_STORE must be dynamo or postgres in production")
		}
		log.Printf("bootstrap: using in-memory record store")
		return nil, photos.NewMemoryRepo(), nil
	}
}

func buildJanitor(ctx context.Context, cfg config.Config) (queue.Client, error) {
	if cfg.JanitorQueueURL == "" {
		return queue.Noop{}, nil
	}
	client, err := queue.NewSQSClient(ctx, cfg.AWSRegion, cfg.JanitorQueueURL)
	if err != nil {
		return nil, fmt.Errorf("build janitor queue: %w", err)
	}
	return client, nil
}
