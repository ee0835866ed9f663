package document

import (
	"context"
	"sync"

	"seminarhub/internal/domain"
)

// seminarRepository runs every operation as load, mutate, save under one
// mutex. The lock is per process; separate processes sharing a document
// still race.
type seminarRepository struct {
	mu sync.Mutex
	gw *Gateway
}

func NewSeminarRepository(gw *Gateway) domain.SeminarRepository {
	return &seminarRepository{gw: gw}
}

func (r *seminarRepository) List(ctx context.Context) ([]*domain.Seminar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.gw.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Seminar, len(c.Seminars))
	for i, s := range c.Seminars {
		out[i] = s.Clone()
	}
	return out, nil
}

func (r *seminarRepository) GetByID(ctx context.Context, id int64) (*domain.Seminar, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.gw.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := c.Find(id)
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *seminarRepository) Create(ctx context.Context, s *domain.Seminar) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.gw.Load(ctx)
	if err != nil {
		return err
	}
	stored := s.Clone()
	c.Append(stored)
	if err := r.gw.Save(ctx, c); err != nil {
		return err
	}
	s.ID = stored.ID
	return nil
}

func (r *seminarRepository) Replace(ctx context.Context, id int64, s *domain.Seminar) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.gw.Load(ctx)
	if err != nil {
		return err
	}
	if !c.Replace(id, s.Clone()) {
		return domain.ErrNotFound
	}
	if err := r.gw.Save(ctx, c); err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *seminarRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.gw.Load(ctx)
	if err != nil {
		return err
	}
	if !c.Remove(id) {
		return domain.ErrNotFound
	}
	return r.gw.Save(ctx, c)
}
