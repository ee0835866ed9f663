package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"seminarhub/internal/domain"
)

// Gateway translates between the stored document and domain.Collection.
//
// Load fails open: a missing, empty or syntactically invalid document yields
// an empty collection. Any other read failure, including valid JSON with a
// mistyped field, is returned, so a later Save cannot overwrite a document
// that merely could not be read.
type Gateway struct {
	blob   Blob
	logger *slog.Logger
}

func NewGateway(blob Blob, logger *slog.Logger) *Gateway {
	return &Gateway{blob: blob, logger: logger}
}

func (g *Gateway) Load(ctx context.Context) (*domain.Collection, error) {
	raw, err := g.blob.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrBlobNotFound) {
			g.logger.DebugContext(ctx, "seminars document missing, starting empty")
			return domain.NewCollection(), nil
		}
		return nil, fmt.Errorf("read seminars document: %w", err)
	}

	var c domain.Collection
	if err := json.Unmarshal(raw, &c); err != nil {
		if isSyntaxError(err) {
			g.logger.WarnContext(ctx, "seminars document is not valid JSON, using empty collection", "err", err)
			return domain.NewCollection(), nil
		}
		// Well-formed JSON of the wrong shape still holds records; refuse to load it.
		return nil, fmt.Errorf("decode seminars document: %w", err)
	}

	seminars := make([]*domain.Seminar, 0, len(c.Seminars))
	for _, s := range c.Seminars {
		if s != nil {
			seminars = append(seminars, s)
		}
	}
	c.Seminars = seminars
	return &c, nil
}

// isSyntaxError reports whether err means the bytes are not JSON at all.
func isSyntaxError(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

// Save overwrites the whole document with c, indented by two spaces.
func (g *Gateway) Save(ctx context.Context, c *domain.Collection) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", domain.ErrStoreWrite, err)
	}
	if err := g.blob.Write(ctx, data); err != nil {
		g.logger.ErrorContext(ctx, "failed to write seminars document", "err", err)
		return fmt.Errorf("%w: %w", domain.ErrStoreWrite, err)
	}
	return nil
}
