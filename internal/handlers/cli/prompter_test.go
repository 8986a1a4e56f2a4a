package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePrompter(t *testing.T) {
	t.Run("should return answers trimmed and in order", func(t *testing.T) {
		var out bytes.Buffer
		p := newLinePrompter(t.Context(), strings.NewReader("  alice \nbob\n"), &out)

		first, err := p.Text(t.Context(), "Name", "")
		require.NoError(t, err)
		second, err := p.Text(t.Context(), "Name", "")
		require.NoError(t, err)

		assert.Equal(t, "alice", first)
		assert.Equal(t, "bob", second)
		assert.Equal(t, "Name: Name: ", out.String())
	})

	t.Run("should fall back to the default on an empty answer", func(t *testing.T) {
		var out bytes.Buffer
		p := newLinePrompter(t.Context(), strings.NewReader("\n"), &out)

		answer, err := p.Text(t.Context(), "Balance", "50")
		require.NoError(t, err)

		assert.Equal(t, "50", answer)
		assert.Equal(t, "Balance [50]: ", out.String())
	})

	t.Run("should return io.EOF once input is exhausted", func(t *testing.T) {
		p := newLinePrompter(t.Context(), strings.NewReader(""), io.Discard)

		_, err := p.Text(t.Context(), "Name", "")
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("should stop when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		r, w := io.Pipe()
		defer w.Close()

		p := newLinePrompter(ctx, r, io.Discard)
		cancel()

		_, err := p.Text(ctx, "Name", "")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should accept only listed options", func(t *testing.T) {
		var out bytes.Buffer
		p := newLinePrompter(t.Context(), strings.NewReader("carol\nbob\n"), &out)
		options := []string{"alice", "bob"}

		_, err := p.Select(t.Context(), "Receiver", options)
		assert.ErrorIs(t, err, ErrInvalidInput)

		answer, err := p.Select(t.Context(), "Receiver", options)
		require.NoError(t, err)
		assert.Equal(t, "bob", answer)
		assert.Contains(t, out.String(), "Receiver (alice, bob): ")
	})

	t.Run("should refuse to select from nothing", func(t *testing.T) {
		p := newLinePrompter(t.Context(), strings.NewReader("alice\n"), io.Discard)

		_, err := p.Select(t.Context(), "Wallet", nil)
		assert.ErrorIs(t, err, ErrNoOptions)
	})
}

func TestPtermPrompter(t *testing.T) {
	t.Run("should not prompt once the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := ptermPrompter{}.Text(ctx, "Name", "")
		assert.ErrorIs(t, err, context.Canceled)

		_, err = ptermPrompter{}.Select(ctx, "Wallet", []string{"alice"})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("should refuse to select from nothing", func(t *testing.T) {
		_, err := ptermPrompter{}.Select(t.Context(), "Wallet", nil)
		assert.ErrorIs(t, err, ErrNoOptions)
	})
}
