package ledger

import "fmt"

// Verify re-derives every block hash from its stored fields and checks that
// the chain is still a valid singly linked hash list:
//
//   - block 0 carries ZeroHash as previous hash and the genesis payload,
//   - every block's Index equals its position,
//   - every stored Hash equals ComputeHash of the block,
//   - every PreviousHash equals the Hash of the block before it.
//
// The first violation is reported as an error wrapping ErrChainCorrupted.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return ErrEmptyChain
	}

	genesis := l.blocks[0]
	if !genesis.PreviousHash.IsZero() || genesis.Payload.Kind != PayloadGenesis {
		return fmt.Errorf("%w: block 0 is not a genesis block", ErrChainCorrupted)
	}

	for i, b := range l.blocks {
		if b.Index != uint64(i) {
			return fmt.Errorf("%w: block %d has index %d", ErrChainCorrupted, i, b.Index)
		}

		if expected := ComputeHash(l.Digest(), b); b.Hash != expected {
			return fmt.Errorf("%w: block %d hash mismatch: stored %s, computed %s", ErrChainCorrupted, i, b.Hash, expected)
		}

		if i == 0 {
			continue
		}

		if prev := l.blocks[i-1]; b.PreviousHash != prev.Hash {
			return fmt.Errorf("%w: block %d previous hash %s does not link to %s", ErrChainCorrupted, i, b.PreviousHash, prev.Hash)
		}
	}

	return nil
}
