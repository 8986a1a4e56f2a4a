package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/walletregistry"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runShell feeds input to a plain shell over a fresh ledger and registry.
func runShell(t *testing.T, input string) (string, *ledger.Ledger, walletregistry.Service) {
	t.Helper()

	var out bytes.Buffer
	l := ledger.New()
	wr := walletregistry.New(l)
	cfg := testConfig("", &out)

	p := newLinePrompter(t.Context(), strings.NewReader(input), &out)
	require.NoError(t, newShell(cfg, l, wr, p, &out).Run(t.Context()))

	return out.String(), l, wr
}

func TestShell(t *testing.T) {
	t.Run("should stop at end of input", func(t *testing.T) {
		output, l, _ := runShell(t, "")

		assert.Contains(t, output, commandPrompt)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("should accept command aliases", func(t *testing.T) {
		output, _, wr := runShell(t, session(
			"create", "alice", "10",
			"create", "bob", "1",
			"transfer", "alice", "bob", "2.5",
			"wallets",
			"exit",
		))

		balance, err := wr.BalanceOf(t.Context(), "bob")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("3.5").Equal(balance))

		assert.Contains(t, output, "alice")
		assert.Contains(t, output, "7.5")
	})

	t.Run("should report unknown commands and continue", func(t *testing.T) {
		output, _, _ := runShell(t, session("mine", "help"))

		assert.Contains(t, output, `unknown command "mine"`)
		assert.Contains(t, output, "Commands:")
	})

	t.Run("should ignore blank lines", func(t *testing.T) {
		output, _, _ := runShell(t, session("", "   ", "exit_0"))

		assert.NotContains(t, output, "unknown command")
	})

	t.Run("should re-prompt for a malformed amount", func(t *testing.T) {
		output, _, wr := runShell(t, session("user_creation", "alice", "lots", "12.5"))

		assert.Contains(t, output, "malformed amount")

		balance, err := wr.BalanceOf(t.Context(), "alice")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.5").Equal(balance))
	})

	t.Run("should give up after the configured attempts", func(t *testing.T) {
		output, l, _ := runShell(t, session(
			"user_creation", "alice", "50",
			"user_creation", "bob", "0",
			"commit_transaction", "alice", "carol", "alice", "0",
			"list_wallets",
		))

		assert.Contains(t, output, ErrTooManyAttempts.Error()+" after 3 attempts")
		assert.Equal(t, 1, l.Len())
	})

	t.Run("should select wallets by identity only", func(t *testing.T) {
		output, l, _ := runShell(t, session(
			"user_creation", "alice", "50",
			"user_creation", "bob", "0",
			"commit_transaction", "0", "alice", "bob", "5",
		))

		assert.Contains(t, output, `"0" is not one of alice, bob`)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("should report registry rejections", func(t *testing.T) {
		output, _, wr := runShell(t, session(
			"user_creation", "alice", "-5",
			"user_creation", "alice", "1",
			"user_creation", "alice", "1",
		))

		assert.Contains(t, output, walletregistry.ErrInvalidAmount.Error())
		assert.Contains(t, output, walletregistry.ErrDuplicateIdentity.Error())
		assert.Len(t, wr.Wallets(t.Context()), 1)
	})

	t.Run("should need two wallets for a transfer", func(t *testing.T) {
		output, _, _ := runShell(t, session("user_creation", "alice", "1", "commit_transaction"))

		assert.Contains(t, output, "a transfer needs at least two wallets")
	})

	t.Run("should need a wallet to check a balance", func(t *testing.T) {
		output, _, _ := runShell(t, session("check_balance"))

		assert.Contains(t, output, "no wallets registered yet")
	})

	t.Run("should display blocks by index", func(t *testing.T) {
		output, _, _ := runShell(t, session(
			"user_creation", "alice", "50",
			"user_creation", "bob", "0",
			"commit_transaction", "alice", "bob", "1",
			"display_chain 1",
			"display_chain 7",
			"display_chain one",
			"chain",
		))

		assert.Contains(t, output, "Block #1")
		assert.Contains(t, output, ledger.ErrOutOfRange.Error())
		assert.Contains(t, output, `block index "one" is not a number`)
		assert.Contains(t, output, "Current block of the blockchain:")
	})

	t.Run("should list an empty registry", func(t *testing.T) {
		output, _, _ := runShell(t, session("list_wallets"))

		assert.Contains(t, output, "No wallets registered yet.")
	})
}
