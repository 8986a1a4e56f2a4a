package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// HashSize is the size in bytes of every block digest.
const HashSize = 32

// Hash is a fixed-size digest of a block's canonical content.
type Hash [HashSize]byte

// ZeroHash is the sentinel previous hash carried by the genesis block.
var ZeroHash = Hash{}

// Hex returns the lowercase hexadecimal encoding of the hash.
func (h Hash) Hex() string {
	return hex.EncodeToString(h[:])
}

func (h Hash) String() string {
	return h.Hex()
}

// IsZero reports whether h equals ZeroHash.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// Digest names the hash function used to fingerprint blocks.
//
// Every digest produces a 256-bit value and is a pure function of its input.
type Digest string

const (
	// DigestSHA256 hashes blocks with SHA-256. It is the default.
	DigestSHA256 Digest = "sha256"

	// DigestBLAKE2b hashes blocks with BLAKE2b-256.
	DigestBLAKE2b Digest = "blake2b"
)

// ParseDigest maps a configuration value to a known Digest.
//
// An empty name selects DigestSHA256.
func ParseDigest(name string) (Digest, error) {
	switch Digest(name) {
	case "", DigestSHA256:
		return DigestSHA256, nil
	case DigestBLAKE2b:
		return DigestBLAKE2b, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDigest, name)
	}
}

// Sum hashes data. Unknown digests fall back to SHA-256, which keeps the
// zero value of Digest usable.
func (d Digest) Sum(data []byte) Hash {
	if d == DigestBLAKE2b {
		return Hash(blake2b.Sum256(data))
	}

	return Hash(sha256.Sum256(data))
}
