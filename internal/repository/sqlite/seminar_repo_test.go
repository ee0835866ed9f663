package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"seminarhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) domain.SeminarRepository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "seminars.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, Migrate(ctx, db))
	return NewSeminarRepository(db)
}

func TestSeminarRepository_CRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	first := &domain.Seminar{ID: 50, Title: "Go", Description: "intro", Date: "2025-01-01", Time: "10:00", Photo: "/go.png"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := domain.NewSeminar("SQL", "joins", "", "", "")
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	upd := &domain.Seminar{ID: 2, Title: "Go 2"}
	require.NoError(t, repo.Replace(ctx, 1, upd))
	assert.Equal(t, int64(1), upd.ID)
	got, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Go 2", got.Title)
	assert.Empty(t, got.Photo)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Replace(ctx, 1, &domain.Seminar{}), domain.ErrNotFound)

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}

func TestSeminarRepository_IDRules(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, domain.NewSeminar("s", "", "", "", "")))
	}
	// [1,2,3] -> delete 2 -> next is 4, the gap is not reused.
	require.NoError(t, repo.Delete(ctx, 2))
	s := domain.NewSeminar("s", "", "", "", "")
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, int64(4), s.ID)

	for _, id := range []int64{1, 3, 4} {
		require.NoError(t, repo.Delete(ctx, id))
	}
	s = domain.NewSeminar("fresh", "", "", "", "")
	require.NoError(t, repo.Create(ctx, s))
	assert.Equal(t, int64(1), s.ID)
}

func TestSeminarRepository_ConcurrentCreates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const n = 10
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, domain.NewSeminar("c", "", "", "", "")))
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	for i, s := range list {
		assert.Equal(t, int64(i+1), s.ID)
	}
}
