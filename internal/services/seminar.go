package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seminarhub/internal/domain"
)

type seminarService struct {
	seminarRepo    domain.SeminarRepository
	contextTimeout time.Duration
}

func NewSeminarService(seminarRepo domain.SeminarRepository, timeout time.Duration) domain.SeminarService {
	return &seminarService{
		seminarRepo:    seminarRepo,
		contextTimeout: timeout,
	}
}

// ListSeminars returns every seminar in stored order, filtered by query when it is non-empty.
func (s *seminarService) ListSeminars(ctx context.Context, query string) ([]*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	seminars, err := s.seminarRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seminars: %w", err)
	}
	return domain.FilterSeminars(seminars, query), nil
}

func (s *seminarService) GetSeminar(ctx context.Context, id int64) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	seminar, err := s.seminarRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get seminar: %w", err)
	}
	return seminar, nil
}

func (s *seminarService) CreateSeminar(ctx context.Context, seminar *domain.Seminar) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.seminarRepo.Create(ctx, seminar); err != nil {
		return fmt.Errorf("create seminar: %w", err)
	}
	return nil
}

func (s *seminarService) ReplaceSeminar(ctx context.Context, id int64, seminar *domain.Seminar) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.seminarRepo.Replace(ctx, id, seminar); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("replace seminar: %w", err)
	}
	return nil
}

func (s *seminarService) DeleteSeminar(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.seminarRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete seminar: %w", err)
	}
	return nil
}
