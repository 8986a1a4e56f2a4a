package walletregistry

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/blockledger/internal/pkg/amount"
	"github.com/gabapcia/blockledger/internal/pkg/logger"
	"github.com/gabapcia/blockledger/internal/pkg/validator"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// addressPrefix starts every wallet address.
	addressPrefix = "0x"

	// addressEntropyBytes is the amount of randomness behind an address (248 bits),
	// rendered as 62 hex characters after the prefix.
	addressEntropyBytes = 31

	// maxAddressAttempts bounds the redraws made after an address collision.
	maxAddressAttempts = 8
)

// Wallet is a snapshot of a registered wallet.
type Wallet struct {
	Identity string          // unique display name chosen by the user
	Address  string          // opaque unique identifier, "0x" + 62 hex characters
	Balance  decimal.Decimal // never negative
}

// walletInput carries the user-supplied fields checked by the validator.
type walletInput struct {
	Identity string `validate:"required,trimmed,max=64"`
}

// checkInitialBalance rejects negative balances and balances finer than amount.MaxScale.
func checkInitialBalance(initial decimal.Decimal) error {
	if initial.IsNegative() {
		return fmt.Errorf("%w: initial balance %s is negative", ErrInvalidAmount, initial.String())
	}

	if err := amount.CheckScale(initial); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	return nil
}

// newAddress draws addresses from the random source until it finds one that
// was never issued. Callers must hold the write lock.
func (s *service) newAddress() (string, error) {
	buf := make([]byte, addressEntropyBytes)

	for range maxAddressAttempts {
		if _, err := io.ReadFull(s.random, buf); err != nil {
			return "", fmt.Errorf("read address entropy: %w", err)
		}

		address := addressPrefix + hex.EncodeToString(buf)
		if !s.addresses.Has(address) {
			return address, nil
		}
	}

	return "", ErrAddressSpaceExhausted
}

// CreateWallet validates the input, generates a unique address and registers
// the wallet. Nothing is registered when an error is returned.
func (s *service) CreateWallet(ctx context.Context, identity string, initialBalance decimal.Decimal) (Wallet, error) {
	ctx, span := s.tracer.Start(ctx, "walletregistry.CreateWallet", trace.WithAttributes(
		attribute.String("wallet.identity", identity),
	))
	defer span.End()

	ctx = logger.Derive(ctx, "wallet.identity", identity)

	if err := validator.Validate(walletInput{Identity: identity}); err != nil {
		err = errors.Join(ErrInvalidIdentity, err)
		span.SetStatus(codes.Error, err.Error())
		return Wallet{}, err
	}

	if err := checkInitialBalance(initialBalance); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Wallet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.wallets[identity]; exists {
		err := fmt.Errorf("%w: %q", ErrDuplicateIdentity, identity)
		span.SetStatus(codes.Error, err.Error())
		return Wallet{}, err
	}

	address, err := s.newAddress()
	if err != nil {
		logger.Error(ctx, "failed to generate wallet address", "error", err)
		span.SetStatus(codes.Error, err.Error())
		return Wallet{}, err
	}

	w := &Wallet{
		Identity: identity,
		Address:  address,
		Balance:  initialBalance,
	}

	s.wallets[identity] = w
	s.order = append(s.order, identity)
	s.addresses.Add(address)

	logger.Info(ctx, "wallet created",
		"wallet.address", address,
		"wallet.balance", initialBalance.String(),
	)

	return *w, nil
}

// lookup returns the stored wallet for identity. Callers must hold a lock.
func (s *service) lookup(identity string) (*Wallet, error) {
	w, ok := s.wallets[identity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWallet, identity)
	}
	return w, nil
}

func (s *service) BalanceOf(ctx context.Context, identity string) (decimal.Decimal, error) {
	w, err := s.Wallet(ctx, identity)
	if err != nil {
		return decimal.Zero, err
	}
	return w.Balance, nil
}

func (s *service) Wallet(_ context.Context, identity string) (Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, err := s.lookup(identity)
	if err != nil {
		return Wallet{}, err
	}
	return *w, nil
}

// WalletByAddress scans wallets in creation order; the registry lives in memory
// and stays small.
func (s *service) WalletByAddress(_ context.Context, address string) (Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.addresses.Has(address) {
		return Wallet{}, fmt.Errorf("%w: address %q", ErrUnknownWallet, address)
	}

	for _, identity := range s.order {
		if w := s.wallets[identity]; w.Address == address {
			return *w, nil
		}
	}

	return Wallet{}, fmt.Errorf("%w: address %q", ErrUnknownWallet, address)
}

func (s *service) Wallets(_ context.Context) []Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Wallet, 0, len(s.order))
	for _, identity := range s.order {
		out = append(out, *s.wallets[identity])
	}
	return out
}

func (s *service) TotalSupply(_ context.Context) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	balances := make([]decimal.Decimal, 0, len(s.order))
	for _, identity := range s.order {
		balances = append(balances, s.wallets[identity].Balance)
	}
	return amount.Sum(balances...)
}
