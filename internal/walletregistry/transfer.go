package walletregistry

import (
	"context"
	"fmt"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/pkg/amount"
	"github.com/gabapcia/blockledger/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// validateTransfer resolves both wallets and checks the transfer rules in their
// documented order. Callers must hold the write lock.
func (s *service) validateTransfer(sender, receiver string, amt decimal.Decimal) (from, to *Wallet, err error) {
	if from, err = s.lookup(sender); err != nil {
		return nil, nil, err
	}

	if to, err = s.lookup(receiver); err != nil {
		return nil, nil, err
	}

	if sender == receiver {
		return nil, nil, fmt.Errorf("%w: %q", ErrSameWallet, sender)
	}

	if !amt.IsPositive() {
		return nil, nil, fmt.Errorf("%w: transfer amount %s must be positive", ErrInvalidAmount, amt.String())
	}

	if err := amount.CheckScale(amt); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	if from.Balance.LessThan(amt) {
		return nil, nil, fmt.Errorf("%w: %q holds %s, needs %s", ErrInsufficientFunds, sender, from.Balance.String(), amt.String())
	}

	return from, to, nil
}

// Transfer validates, appends the transfer block and then applies both balance
// changes while holding the write lock. The ledger append cannot fail, so the
// block and the balances are committed together or not at all.
func (s *service) Transfer(ctx context.Context, sender, receiver string, amt decimal.Decimal) (ledger.Block, error) {
	transferID := uuid.Must(uuid.NewV7()).String()

	ctx, span := s.tracer.Start(ctx, "walletregistry.Transfer", trace.WithAttributes(
		attribute.String("transfer.id", transferID),
		attribute.String("transfer.sender", sender),
		attribute.String("transfer.receiver", receiver),
		attribute.String("transfer.amount", amt.String()),
	))
	defer span.End()

	ctx = logger.Derive(ctx,
		"transfer.id", transferID,
		"transfer.sender", sender,
		"transfer.receiver", receiver,
		"transfer.amount", amt.String(),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	from, to, err := s.validateTransfer(sender, receiver, amt)
	if err != nil {
		reason := rejectionReason(err)

		s.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
		span.SetStatus(codes.Error, err.Error())
		logger.Warn(ctx, "transfer rejected", "reason", reason, "error", err)

		return ledger.Block{}, err
	}

	block := s.ledger.AppendTransfer(sender, receiver, amt)

	from.Balance = from.Balance.Sub(amt)
	to.Balance = to.Balance.Add(amt)

	s.committed.Add(ctx, 1)
	span.SetAttributes(attribute.Int64("block.index", int64(block.Index)))
	logger.Info(ctx, "transfer committed",
		"block.index", block.Index,
		"block.hash", block.Hash.Hex(),
	)

	return block, nil
}
