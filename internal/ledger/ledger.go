// Package ledger implements an append-only chain of blocks linked by hash.
//
// A Ledger starts with a genesis block and grows one block per recorded
// transfer. Blocks are never mutated or removed once appended. The package
// performs no validation of transfer semantics; callers (see walletregistry)
// decide what is allowed to be recorded.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyChain is returned by Latest and Verify when the chain has no genesis block.
	ErrEmptyChain = errors.New("chain is empty")

	// ErrOutOfRange is returned by Get for an index outside [0, Len()).
	ErrOutOfRange = errors.New("block index out of range")

	// ErrChainCorrupted is returned by Verify when a stored block no longer
	// matches its recomputed digest or its predecessor.
	ErrChainCorrupted = errors.New("chain integrity check failed")

	// ErrUnknownDigest is returned by ParseDigest for unsupported algorithms.
	ErrUnknownDigest = errors.New("unknown digest algorithm")
)

// config holds construction options for a Ledger.
type config struct {
	digest Digest
	now    func() time.Time
}

// Option configures a Ledger at construction time.
type Option func(*config)

// WithDigest selects the hash function used to seal blocks.
func WithDigest(d Digest) Option {
	return func(c *config) {
		c.digest = d
	}
}

// WithClock overrides the time source used for block timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Ledger is an in-memory, append-only sequence of hash-linked blocks.
//
// It is safe for concurrent use. The zero value has no genesis block and uses
// SHA-256 with the wall clock; use New to obtain a ready chain.
type Ledger struct {
	mu     sync.RWMutex
	blocks []Block
	digest Digest
	now    func() time.Time
}

// New creates a Ledger and appends its genesis block.
func New(opts ...Option) *Ledger {
	cfg := config{
		digest: DigestSHA256,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	l := &Ledger{
		digest: cfg.digest,
		now:    cfg.now,
	}
	l.createGenesis()

	return l
}

// timestamp returns the current time normalized for hashing.
func (l *Ledger) timestamp() time.Time {
	now := l.now
	if now == nil {
		now = time.Now
	}

	// Round(0) drops the monotonic reading so the stored value round-trips.
	return now().UTC().Round(0)
}

// seal computes the block hash and appends it. Callers must hold mu.
func (l *Ledger) seal(b Block) Block {
	b.Hash = ComputeHash(l.Digest(), b)
	l.blocks = append(l.blocks, b)
	return b
}

// createGenesis appends block 0. Callers must hold mu or own l exclusively.
func (l *Ledger) createGenesis() Block {
	return l.seal(Block{
		Index:        0,
		PreviousHash: ZeroHash,
		Timestamp:    l.timestamp(),
		Payload:      Payload{Kind: PayloadGenesis},
	})
}

// Digest reports the hash function sealing this chain.
func (l *Ledger) Digest() Digest {
	if l.digest == "" {
		return DigestSHA256
	}
	return l.digest
}

// AppendTransfer seals a new transfer block on top of the chain and returns it.
//
// No checks are made on the participants or the amount. On a zero-value Ledger
// the genesis block is created first.
func (l *Ledger) AppendTransfer(sender, receiver string, amount decimal.Decimal) Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.blocks) == 0 {
		l.createGenesis()
	}

	prev := l.blocks[len(l.blocks)-1]

	return l.seal(Block{
		Index:        uint64(len(l.blocks)),
		PreviousHash: prev.Hash,
		Timestamp:    l.timestamp(),
		Payload: Payload{
			Kind: PayloadTransfer,
			Transfer: Transfer{
				Sender:   sender,
				Receiver: receiver,
				Amount:   amount,
			},
		},
	})
}

// Latest returns the most recently appended block.
func (l *Ledger) Latest() (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return Block{}, ErrEmptyChain
	}

	return l.blocks[len(l.blocks)-1], nil
}

// Get returns the block at the given index.
func (l *Ledger) Get(index uint64) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index >= uint64(len(l.blocks)) {
		return Block{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(l.blocks))
	}

	return l.blocks[index], nil
}

// Len returns the number of blocks, genesis included.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.blocks)
}

// Blocks returns a copy of the whole chain, genesis first.
func (l *Ledger) Blocks() []Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}
