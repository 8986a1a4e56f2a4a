package walletregistry

import "errors"

var (
	// ErrDuplicateIdentity is returned when a wallet with the same identity already exists.
	ErrDuplicateIdentity = errors.New("wallet identity already registered")

	// ErrUnknownWallet is returned when an identity or address is not registered.
	ErrUnknownWallet = errors.New("wallet not found")

	// ErrSameWallet is returned when a transfer names the same wallet on both sides.
	ErrSameWallet = errors.New("sender and receiver are the same wallet")

	// ErrInvalidAmount is returned for negative initial balances, non-positive
	// transfer amounts and amounts with too many fractional digits.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds is returned when the sender's balance does not cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidIdentity is returned when an identity fails validation.
	ErrInvalidIdentity = errors.New("invalid wallet identity")

	// ErrAddressSpaceExhausted is returned when no unused address could be drawn
	// from the random source.
	ErrAddressSpaceExhausted = errors.New("could not generate a unique wallet address")
)

// rejectionReason maps an error to the low-cardinality label used on the
// rejected-transfers counter.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownWallet):
		return "unknown_wallet"
	case errors.Is(err, ErrSameWallet):
		return "same_wallet"
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "other"
	}
}
