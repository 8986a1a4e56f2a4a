package ledger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// GenesisMarker is the fixed payload text of block 0.
const GenesisMarker = "Genesis Block"

// PayloadKind distinguishes the two kinds of block content.
type PayloadKind uint8

const (
	// PayloadGenesis marks the first block of a chain.
	PayloadGenesis PayloadKind = iota + 1

	// PayloadTransfer marks a block recording a value transfer.
	PayloadTransfer
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadGenesis:
		return "genesis"
	case PayloadTransfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Transfer is the structured record of a move of Amount from Sender to Receiver.
type Transfer struct {
	Sender   string          // identity of the debited wallet
	Receiver string          // identity of the credited wallet
	Amount   decimal.Decimal // strictly positive amount moved
}

// Payload is the semantic content of a block.
//
// Transfer is only meaningful when Kind is PayloadTransfer.
type Payload struct {
	Kind     PayloadKind
	Transfer Transfer
}

// Description renders the payload the way the chain is shown to users, e.g.
// "alice sends bob 20 WesleyCoin".
func (p Payload) Description(currency string) string {
	if p.Kind == PayloadGenesis {
		return GenesisMarker
	}

	return fmt.Sprintf("%s sends %s %s %s", p.Transfer.Sender, p.Transfer.Receiver, p.Transfer.Amount.String(), currency)
}

// Block is one immutable record of the chain.
type Block struct {
	Index        uint64    // position in the chain, 0 for genesis
	PreviousHash Hash      // Hash of the preceding block, ZeroHash for genesis
	Timestamp    time.Time // creation time in UTC, without monotonic reading
	Payload      Payload   // genesis marker or transfer record
	Hash         Hash      // digest over Index, PreviousHash, Timestamp and Payload
}

// appendField writes a length-prefixed string so that adjacent fields can never
// be confused ("ab"+"c" and "a"+"bc" encode differently).
func appendField(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

// canonicalBytes serializes the hashed fields of b in a fixed order:
//
//	index (uint64 BE) | previous hash (32 bytes) | timestamp (UnixNano int64 BE) |
//	payload kind (1 byte) | length-prefixed payload fields
//
// The Hash field itself is never part of the encoding.
func canonicalBytes(b Block) []byte {
	buf := make([]byte, 0, 128)
	buf = binary.BigEndian.AppendUint64(buf, b.Index)
	buf = append(buf, b.PreviousHash[:]...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(b.Timestamp.UnixNano()))
	buf = append(buf, byte(b.Payload.Kind))

	switch b.Payload.Kind {
	case PayloadGenesis:
		buf = appendField(buf, GenesisMarker)
	case PayloadTransfer:
		buf = appendField(buf, b.Payload.Transfer.Sender)
		buf = appendField(buf, b.Payload.Transfer.Receiver)
		buf = appendField(buf, b.Payload.Transfer.Amount.String())
	}

	return buf
}

// ComputeHash recomputes the digest of b from its own stored fields.
//
// It ignores b.Hash, so it can be used both to seal a new block and to check
// an existing one.
func ComputeHash(d Digest, b Block) Hash {
	return d.Sum(canonicalBytes(b))
}
