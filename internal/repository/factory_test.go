package repository

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seminarhub/config"
	"seminarhub/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNew_FileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seminars.json")
	cfg := &config.Config{StoreBackend: config.BackendFile, DataFile: path}

	repo, closer, err := New(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	require.NotNil(t, closer)
	defer closer.Close()

	s := domain.NewSeminar("file", "", "", "", "")
	require.NoError(t, repo.Create(context.Background(), s))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"title": "file"`)
}

func TestNew_SQLiteBackend(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "db", "s.db")}

	repo, closer, err := New(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	defer closer.Close()

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNew_S3BackendWithStaticKeys(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: config.BackendS3,
		S3: config.S3Config{
			Bucket: "b", Key: "k.json", Region: "eu-west-1",
			Endpoint: "http://127.0.0.1:9000", AccessKeyID: "id", SecretAccessKey: "secret",
		},
	}
	repo, closer, err := New(context.Background(), cfg, testLogger)
	require.NoError(t, err)
	assert.NotNil(t, repo)
	assert.NoError(t, closer.Close())
}

func TestNew_UnknownBackend(t *testing.T) {
	repo, closer, err := New(context.Background(), &config.Config{StoreBackend: "mongo"}, testLogger)
	require.Error(t, err)
	assert.Nil(t, repo)
	assert.Nil(t, closer)
}

func TestNewS3Client_Options(t *testing.T) {
	client, err := NewS3Client(context.Background(), config.S3Config{
		Region: "eu-central-1", Endpoint: "http://minio:9000", AccessKeyID: "a", SecretAccessKey: "b",
	})
	require.NoError(t, err)
	opts := client.Options()
	assert.Equal(t, "eu-central-1", opts.Region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://minio:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
}
