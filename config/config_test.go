package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	for _, k := range []string{"PORT", "STORE_BACKEND", "DATA_FILE", "DATABASE_URL", "SQLITE_PATH",
		"S3_BUCKET", "S3_KEY", "S3_REGION", "S3_ENDPOINT", "ALLOWED_ORIGINS", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, "data/seminars.json", cfg.DataFile)
	assert.Equal(t, "seminars.json", cfg.S3.Key)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,,")
	t.Setenv("REQUEST_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, BackendSQLite, cfg.StoreBackend)
	assert.Equal(t, "/tmp/x.db", cfg.SQLitePath)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORE_BACKEND": "mongo"}},
		{"s3 without bucket", map[string]string{"STORE_BACKEND": "s3", "S3_BUCKET": ""}},
		{"bad timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}},
		{"negative timeout", map[string]string{"REQUEST_TIMEOUT": "-1s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv("STORE_BACKEND", "")
			t.Setenv("REQUEST_TIMEOUT", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
