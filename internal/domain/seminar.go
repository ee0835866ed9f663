package domain

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Seminar is a single seminar record. Date, Time and Photo are opaque to the store.
type Seminar struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Photo       string `json:"photo"`
}

// NewSeminar returns a new Seminar with the given fields. ID is set by the repository on create.
func NewSeminar(title, description, date, time, photo string) *Seminar {
	return &Seminar{
		Title:       title,
		Description: description,
		Date:        date,
		Time:        time,
		Photo:       photo,
	}
}

// Clone returns a copy of s so callers cannot alias stored records.
func (s *Seminar) Clone() *Seminar {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// ParseID parses a path id. Any integer is valid; zero and negative ids
// simply match no record unless a hand-edited document holds them.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// MatchesQuery reports whether title or description contains query, ignoring case.
// An empty query matches every seminar.
func MatchesQuery(s *Seminar, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Description), q)
}

// FilterSeminars returns the seminars matching query, preserving order.
func FilterSeminars(seminars []*Seminar, query string) []*Seminar {
	out := make([]*Seminar, 0, len(seminars))
	for _, s := range seminars {
		if MatchesQuery(s, query) {
			out = append(out, s)
		}
	}
	return out
}

// SeminarRepository defines the interface for seminar storage
type SeminarRepository interface {
	List(ctx context.Context) ([]*Seminar, error)
	GetByID(ctx context.Context, id int64) (*Seminar, error)
	// Create assigns s.ID, ignoring any id already present.
	Create(ctx context.Context, s *Seminar) error
	// Replace overwrites the whole record and forces s.ID to id.
	Replace(ctx context.Context, id int64, s *Seminar) error
	Delete(ctx context.Context, id int64) error
}

// SeminarService defines the business logic for managing seminars
type SeminarService interface {
	ListSeminars(ctx context.Context, query string) ([]*Seminar, error)
	GetSeminar(ctx context.Context, id int64) (*Seminar, error)
	CreateSeminar(ctx context.Context, s *Seminar) error
	ReplaceSeminar(ctx context.Context, id int64, s *Seminar) error
	DeleteSeminar(ctx context.Context, id int64) error
}
