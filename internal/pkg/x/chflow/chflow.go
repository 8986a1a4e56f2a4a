// Package chflow provides context-aware helpers for receiving from Go channels.
package chflow

import (
	"context"
	"io"
)

// Receive waits for a value from ch or for ctx to be done.
//
// It returns ctx.Err() when the context ends first and io.EOF when ch is
// closed, so callers reading a stream can treat both as end of input.
func Receive[T any](ctx context.Context, ch <-chan T) (T, error) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case data, ok := <-ch:
		if !ok {
			return zero, io.EOF
		}
		return data, nil
	}
}
