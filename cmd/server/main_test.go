package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seminarhub/config"
	"seminarhub/internal/delivery/http/middleware"
	"seminarhub/internal/domain"
)

func TestNewServer_FileBackend(t *testing.T) {
	cfg := &config.Config{
		Port:           "0",
		StoreBackend:   config.BackendFile,
		DataFile:       filepath.Join(t.TempDir(), "seminars.json"),
		AllowedOrigins: []string{"http://localhost:3000"},
		RequestTimeout: time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, closer, err := newServer(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, closer.Close()) })
	assert.Equal(t, ":0", srv.Addr)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, err = http.Post(ts.URL+"/seminars", "application/json", strings.NewReader(`{"title":"Go","time":"18:00"}`))
	require.NoError(t, err)
	var created domain.Seminar
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(1), created.ID)

	resp, err = http.Get(ts.URL + "/seminars")
	require.NoError(t, err)
	var list []domain.Seminar
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestNewServer_UnknownBackend(t *testing.T) {
	cfg := &config.Config{StoreBackend: "mongo", RequestTimeout: time.Second}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, closer, err := newServer(context.Background(), cfg, logger)
	require.ErrorContains(t, err, `open mongo store`)
	assert.Nil(t, srv)
	assert.Nil(t, closer)
}
