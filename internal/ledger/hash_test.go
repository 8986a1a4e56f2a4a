package ledger

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	block := Block{
		Index:        4,
		PreviousHash: Hash{0xab},
		Timestamp:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Payload: Payload{
			Kind:     PayloadTransfer,
			Transfer: Transfer{Sender: "alice", Receiver: "bob", Amount: decimal.RequireFromString("12.5")},
		},
	}

	t.Run("should be deterministic", func(t *testing.T) {
		assert.Equal(t, ComputeHash(DigestSHA256, block), ComputeHash(DigestSHA256, block))
		assert.Equal(t, ComputeHash(DigestBLAKE2b, block), ComputeHash(DigestBLAKE2b, block))
	})

	t.Run("should ignore the stored hash field", func(t *testing.T) {
		sealed := block
		sealed.Hash = Hash{0xff}

		assert.Equal(t, ComputeHash(DigestSHA256, block), ComputeHash(DigestSHA256, sealed))
	})

	t.Run("should change when any hashed field changes", func(t *testing.T) {
		base := ComputeHash(DigestSHA256, block)

		mutations := map[string]func(b *Block){
			"index":         func(b *Block) { b.Index++ },
			"previous hash": func(b *Block) { b.PreviousHash = Hash{0xac} },
			"timestamp":     func(b *Block) { b.Timestamp = b.Timestamp.Add(time.Millisecond) },
			"sender":        func(b *Block) { b.Payload.Transfer.Sender = "carol" },
			"receiver":      func(b *Block) { b.Payload.Transfer.Receiver = "carol" },
			"amount":        func(b *Block) { b.Payload.Transfer.Amount = decimal.RequireFromString("12.6") },
			"kind":          func(b *Block) { b.Payload.Kind = PayloadGenesis },
		}

		for name, mutate := range mutations {
			t.Run(name, func(t *testing.T) {
				changed := block
				mutate(&changed)
				assert.NotEqual(t, base, ComputeHash(DigestSHA256, changed))
			})
		}
	})

	t.Run("should not confuse field boundaries", func(t *testing.T) {
		a := block
		a.Payload.Transfer.Sender = "ab"
		a.Payload.Transfer.Receiver = "c"

		b := block
		b.Payload.Transfer.Sender = "a"
		b.Payload.Transfer.Receiver = "bc"

		assert.NotEqual(t, ComputeHash(DigestSHA256, a), ComputeHash(DigestSHA256, b))
	})

	t.Run("should hash equal amounts written with different trailing zeros the same", func(t *testing.T) {
		a := block
		a.Payload.Transfer.Amount = decimal.RequireFromString("20")

		b := block
		b.Payload.Transfer.Amount = decimal.RequireFromString("20.00")

		assert.Equal(t, ComputeHash(DigestSHA256, a), ComputeHash(DigestSHA256, b))
	})
}

func TestHash(t *testing.T) {
	t.Run("should render the zero sentinel as 64 zeros", func(t *testing.T) {
		assert.Equal(t, strings.Repeat("0", 64), ZeroHash.Hex())
		assert.True(t, ZeroHash.IsZero())
	})

	t.Run("should render hex and string identically", func(t *testing.T) {
		h := Hash{0x01, 0x02}
		assert.Equal(t, h.Hex(), h.String())
		assert.True(t, strings.HasPrefix(h.Hex(), "0102"))
		assert.False(t, h.IsZero())
	})
}

func TestParseDigest(t *testing.T) {
	t.Run("should map known names", func(t *testing.T) {
		for name, expected := range map[string]Digest{
			"":        DigestSHA256,
			"sha256":  DigestSHA256,
			"blake2b": DigestBLAKE2b,
		} {
			d, err := ParseDigest(name)
			require.NoError(t, err)
			assert.Equal(t, expected, d)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := ParseDigest("md5")
		assert.ErrorIs(t, err, ErrUnknownDigest)
	})
}
