package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dropkit/dropkit/file"
	"github.com/dropkit/dropkit/handler"
	"github.com/dropkit/dropkit/pkg/config"
	"github.com/dropkit/dropkit/pkg/httpserver"
	"github.com/dropkit/dropkit/pkg/logger"
	"github.com/dropkit/dropkit/pkg/requestid"
	"github.com/dropkit/dropkit/upload"
)

type appConfig struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Server httpserver.Config

	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"local"`
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	BaseURL       string `env:"UPLOAD_BASE_URL" envDefault:"/files"`
	FieldName     string `env:"UPLOAD_FIELD_NAME" envDefault:"file"`
	MaxUploadSize int64  `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`

	S3Bucket         string `env:"S3_BUCKET"`
	S3Region         string `env:"S3_REGION"`
	S3AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	S3SecretKey      string `env:"S3_SECRET_KEY"`
	S3Endpoint       string `env:"S3_ENDPOINT"`
	S3ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

func main() {
	ctx := context.Background()

	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "dropkit"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize storage", logger.Error(err))
		os.Exit(1)
	}

	svc := upload.New(storage,
		upload.WithFieldName(cfg.FieldName),
		upload.WithLogger(log),
	)

	h := handler.New(svc, storage,
		handler.WithLogger(log),
		handler.WithMaxUploadSize(cfg.MaxUploadSize),
	)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, h.Router()); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func newStorage(ctx context.Context, cfg appConfig) (file.Storage, error) {
	switch cfg.StorageDriver {
	case "local":
		return file.NewLocalStorage(cfg.UploadDir, cfg.BaseURL)
	case "s3":
		return file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.S3Bucket,
			Region:         cfg.S3Region,
			AccessKeyID:    cfg.S3AccessKeyID,
			SecretKey:      cfg.S3SecretKey,
			Endpoint:       cfg.S3Endpoint,
			ForcePathStyle: cfg.S3ForcePathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
