// Package document stores the seminar collection as one pretty-printed JSON
// document. The document lives in a Blob: a local file or an S3 object.
package document

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by Blob.Read when the document does not exist yet.
var ErrBlobNotFound = errors.New("document not found")

// Blob is raw storage for the single seminars document.
type Blob interface {
	// Read returns the full document, or ErrBlobNotFound.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the full document.
	Write(ctx context.Context, data []byte) error
}
