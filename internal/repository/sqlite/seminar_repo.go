package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"seminarhub/internal/domain"
)

type seminarRepository struct {
	DB *sql.DB
}

// NewSeminarRepository returns a SeminarRepository on a seminars table.
// Ids follow the document store rule: one above the current maximum.
// Open limits the pool to one connection so concurrent creates serialize.
func NewSeminarRepository(db *sql.DB) domain.SeminarRepository {
	return &seminarRepository{
		DB: db,
	}
}

func (r *seminarRepository) List(ctx context.Context) ([]*domain.Seminar, error) {
	query := `
		SELECT id, title, description, seminar_date, seminar_time, photo
		FROM seminars
		ORDER BY id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	seminars := make([]*domain.Seminar, 0)
	for rows.Next() {
		s := &domain.Seminar{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.Time, &s.Photo); err != nil {
			return nil, err
		}
		seminars = append(seminars, s)
	}
	return seminars, rows.Err()
}

func (r *seminarRepository) GetByID(ctx context.Context, id int64) (*domain.Seminar, error) {
	query := `
		SELECT id, title, description, seminar_date, seminar_time, photo
		FROM seminars
		WHERE id = ?
	`
	s := &domain.Seminar{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.Time, &s.Photo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *seminarRepository) Create(ctx context.Context, s *domain.Seminar) error {
	query := `
		INSERT INTO seminars (id, title, description, seminar_date, seminar_time, photo)
		SELECT COALESCE(MAX(id), 0) + 1, ?, ?, ?, ?, ? FROM seminars
		RETURNING id
	`
	var id int64
	if err := r.DB.QueryRowContext(ctx, query, s.Title, s.Description, s.Date, s.Time, s.Photo).Scan(&id); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	s.ID = id
	return nil
}

func (r *seminarRepository) Replace(ctx context.Context, id int64, s *domain.Seminar) error {
	query := `
		UPDATE seminars
		SET title = ?, description = ?, seminar_date = ?, seminar_time = ?, photo = ?
		WHERE id = ?
	`
	res, err := r.DB.ExecContext(ctx, query, s.Title, s.Description, s.Date, s.Time, s.Photo, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	s.ID = id
	return nil
}

func (r *seminarRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM seminars WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
