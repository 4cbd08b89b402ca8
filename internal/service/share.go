package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/phrazzld/namemagic/internal/domain"
)

// Sharer hands a share payload to a platform share target.
type Sharer interface {
	Share(ctx context.Context, payload domain.SharePayload) error
}

// SharerFunc adapts a function to the Sharer interface.
type SharerFunc func(ctx context.Context, payload domain.SharePayload) error

// Share calls f.
func (f SharerFunc) Share(ctx context.Context, payload domain.SharePayload) error {
	return f(ctx, payload)
}

// WriterSharer writes payloads to an io.Writer as a JSON line. The CLI uses it
// as its share target.
type WriterSharer struct {
	w io.Writer
}

// NewWriterSharer creates a WriterSharer writing to w.
func NewWriterSharer(w io.Writer) *WriterSharer {
	return &WriterSharer{w: w}
}

// Share implements Sharer.
func (s *WriterSharer) Share(ctx context.Context, payload domain.SharePayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode share payload: %w", err)
	}
	if _, err := fmt.Fprintln(s.w, string(data)); err != nil {
		return fmt.Errorf("failed to write share payload: %w", err)
	}
	return nil
}
