// Package walletregistry owns wallet identities and balances and gates every
// balance mutation behind validation before recording it in the ledger.
package walletregistry

import (
	"context"
	"crypto/rand"
	"io"
	"sync"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/pkg/types"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName identifies spans and metrics emitted by this package.
const instrumentationName = "github.com/gabapcia/blockledger/internal/walletregistry"

// Service defines the account registry operations exposed to presentation layers.
//
// Every failure is reported with one of the sentinel errors of this package and
// leaves balances and the ledger untouched.
type Service interface {
	// CreateWallet registers a new wallet with the given identity and initial balance.
	//
	// Returns ErrInvalidIdentity, ErrInvalidAmount or ErrDuplicateIdentity on
	// rejected input.
	CreateWallet(ctx context.Context, identity string, initialBalance decimal.Decimal) (Wallet, error)

	// BalanceOf returns the current balance of the wallet registered under identity.
	BalanceOf(ctx context.Context, identity string) (decimal.Decimal, error)

	// Wallet returns a snapshot of the wallet registered under identity.
	Wallet(ctx context.Context, identity string) (Wallet, error)

	// WalletByAddress returns a snapshot of the wallet owning address.
	WalletByAddress(ctx context.Context, address string) (Wallet, error)

	// Wallets lists every registered wallet in creation order.
	Wallets(ctx context.Context) []Wallet

	// Transfer moves amount from sender to receiver and records the move as a
	// new ledger block, which is returned.
	//
	// Checks run in this order: both wallets exist (ErrUnknownWallet), they differ
	// (ErrSameWallet), amount is positive (ErrInvalidAmount) and covered by the
	// sender's balance (ErrInsufficientFunds).
	Transfer(ctx context.Context, sender, receiver string, amount decimal.Decimal) (ledger.Block, error)

	// TotalSupply returns the sum of all wallet balances.
	TotalSupply(ctx context.Context) decimal.Decimal
}

// service is the concrete implementation of the Service interface.
//
// A single RWMutex guards wallets and the ledger append performed by Transfer,
// so readers never observe a partially applied transfer.
type service struct {
	mu        sync.RWMutex
	ledger    *ledger.Ledger
	random    io.Reader
	wallets   map[string]*Wallet // keyed by identity
	order     []string           // identities in creation order
	addresses types.Set[string]  // every address ever issued

	tracer    trace.Tracer
	committed metric.Int64Counter
	rejected  metric.Int64Counter
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// config holds construction options for the registry.
type config struct {
	random io.Reader
}

// Option configures the registry at construction time.
type Option func(*config)

// WithRandom sets the entropy source used to generate wallet addresses.
// Defaults to crypto/rand.Reader; tests inject a deterministic reader.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		c.random = r
	}
}

// New creates an empty registry recording transfers into l.
func New(l *ledger.Ledger, opts ...Option) *service {
	cfg := config{random: rand.Reader}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := otel.Meter(instrumentationName)

	committed, err := meter.Int64Counter("blockledger.transfers.committed",
		metric.WithDescription("Transfers applied to balances and recorded in the ledger."))
	if err != nil {
		committed = noop.Int64Counter{}
	}

	rejected, err := meter.Int64Counter("blockledger.transfers.rejected",
		metric.WithDescription("Transfers refused by validation, by reason."))
	if err != nil {
		rejected = noop.Int64Counter{}
	}

	return &service{
		ledger:    l,
		random:    cfg.random,
		wallets:   make(map[string]*Wallet),
		addresses: types.NewSet[string](),
		tracer:    otel.Tracer(instrumentationName),
		committed: committed,
		rejected:  rejected,
	}
}
