package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChain(t *testing.T, transfers int) *Ledger {
	t.Helper()

	l := New(WithClock(stepClock()))
	for i := 0; i < transfers; i++ {
		l.AppendTransfer("alice", "bob", decimal.NewFromInt(int64(i+1)))
	}

	require.NoError(t, l.Verify())
	return l
}

func TestLedger_Verify(t *testing.T) {
	t.Run("should accept a fresh chain", func(t *testing.T) {
		require.NoError(t, New().Verify())
	})

	t.Run("should reject an empty chain", func(t *testing.T) {
		var l Ledger
		assert.ErrorIs(t, l.Verify(), ErrEmptyChain)
	})

	t.Run("should detect a tampered payload", func(t *testing.T) {
		l := newChain(t, 3)
		l.blocks[2].Payload.Transfer.Amount = decimal.NewFromInt(1000)

		err := l.Verify()
		require.ErrorIs(t, err, ErrChainCorrupted)
		assert.Contains(t, err.Error(), "block 2 hash mismatch")
	})

	t.Run("should detect a tampered timestamp", func(t *testing.T) {
		l := newChain(t, 2)
		l.blocks[1].Timestamp = l.blocks[1].Timestamp.Add(time.Nanosecond)

		assert.ErrorIs(t, l.Verify(), ErrChainCorrupted)
	})

	t.Run("should detect a resealed block that breaks the link", func(t *testing.T) {
		l := newChain(t, 3)
		l.blocks[1].Payload.Transfer.Amount = decimal.NewFromInt(1000)
		l.blocks[1].Hash = ComputeHash(l.Digest(), l.blocks[1])

		err := l.Verify()
		require.ErrorIs(t, err, ErrChainCorrupted)
		assert.Contains(t, err.Error(), "block 2 previous hash")
	})

	t.Run("should detect an index gap", func(t *testing.T) {
		l := newChain(t, 2)
		l.blocks[2].Index = 7
		l.blocks[2].Hash = ComputeHash(l.Digest(), l.blocks[2])

		err := l.Verify()
		require.ErrorIs(t, err, ErrChainCorrupted)
		assert.Contains(t, err.Error(), "has index 7")
	})

	t.Run("should detect a replaced genesis sentinel", func(t *testing.T) {
		l := newChain(t, 1)
		l.blocks[0].PreviousHash = Hash{1}

		err := l.Verify()
		require.ErrorIs(t, err, ErrChainCorrupted)
		assert.Contains(t, err.Error(), "not a genesis block")
	})
}
