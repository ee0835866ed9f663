package document

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// memBlob is an in-memory Blob with injectable failures.
type memBlob struct {
	mu       sync.Mutex
	data     []byte
	exists   bool
	readErr  error
	writeErr error
	writes   int
}

func newMemBlob(doc string) *memBlob {
	return &memBlob{data: []byte(doc), exists: true}
}

func (m *memBlob) Read(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	if !m.exists {
		return nil, ErrBlobNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *memBlob) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data = append([]byte(nil), data...)
	m.exists = true
	m.writes++
	return nil
}

func (m *memBlob) contents() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.data)
}
