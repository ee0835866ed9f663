// Package repository selects and builds the seminar store named by config.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"seminarhub/config"
	"seminarhub/internal/domain"
	"seminarhub/internal/repository/document"
	"seminarhub/internal/repository/postgres"
	"seminarhub/internal/repository/sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates the SeminarRepository for cfg.StoreBackend.
//
// Supported backends:
//
//	"file"     - JSON document on local disk (default)
//	"s3"       - JSON document in an S3 object
//	"postgres" - seminars table in PostgreSQL
//	"sqlite"   - seminars table in a SQLite file
//
// The returned Closer releases the backend's resources and is never nil.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.SeminarRepository, io.Closer, error) {
	switch cfg.StoreBackend {
	case config.BackendFile, "":
		blob := document.NewFileBlob(cfg.DataFile)
		return document.NewSeminarRepository(document.NewGateway(blob, logger)), nopCloser{}, nil
	case config.BackendS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, nil, err
		}
		blob := document.NewS3Blob(client, cfg.S3.Bucket, cfg.S3.Key)
		return document.NewSeminarRepository(document.NewGateway(blob, logger)), nopCloser{}, nil
	case config.BackendPostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate(ctx, db, postgres.Migrate); err != nil {
			return nil, nil, err
		}
		return postgres.NewSeminarRepository(db), db, nil
	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := migrate(ctx, db, sqlite.Migrate); err != nil {
			return nil, nil, err
		}
		return sqlite.NewSeminarRepository(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %q (supported: file, s3, postgres, sqlite)", cfg.StoreBackend)
	}
}

func migrate(ctx context.Context, db *sql.DB, fn func(context.Context, *sql.DB) error) error {
	if err := fn(ctx, db); err != nil {
		db.Close()
		return err
	}
	return nil
}

// NewS3Client builds an S3 client. Static keys are used when both are set,
// otherwise the default AWS credential chain. A custom endpoint (MinIO,
// LocalStack) switches to path-style addressing.
func NewS3Client(ctx context.Context, cfg config.S3Config) (*s3.Client, error) {
	var awsCfg aws.Config
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
			),
		}
	} else {
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
