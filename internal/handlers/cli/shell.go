package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/pkg/amount"
	"github.com/gabapcia/blockledger/internal/pkg/logger"
	"github.com/gabapcia/blockledger/internal/pkg/resilience/retry"
	"github.com/gabapcia/blockledger/internal/walletregistry"

	"github.com/shopspring/decimal"
)

var (
	// ErrTooManyAttempts is returned when every attempt at a prompt was rejected.
	ErrTooManyAttempts = errors.New("no valid answer")

	// errExit ends the command loop without reporting a failure.
	errExit = errors.New("exit requested")
)

// commandPrompt mirrors the list of commands the shell accepts.
const commandPrompt = "Enter a command ('user_creation', 'commit_transaction', 'check_balance', 'display_chain', 'exit_0')"

// shellCommand is one entry of the shell's command table.
type shellCommand struct {
	names []string
	help  string
	run   func(ctx context.Context, args []string) error
}

// shell is the interactive read-eval-print loop over the registry and the ledger.
type shell struct {
	ledger   *ledger.Ledger
	wr       walletregistry.Service
	prompter Prompter
	out      io.Writer
	retry    retry.Retry
	cfg      RunConfig
	commands []shellCommand
}

func newShell(cfg RunConfig, l *ledger.Ledger, wr walletregistry.Service, p Prompter, out io.Writer) *shell {
	s := &shell{
		ledger:   l,
		wr:       wr,
		prompter: p,
		out:      out,
		cfg:      cfg,
		retry: retry.New(
			retry.WithAttempts(cfg.InputAttempts),
			retry.WithDelay(0),
			retry.WithRetryIf(isInvalidInput),
		),
	}

	s.commands = []shellCommand{
		{names: []string{"user_creation", "create"}, help: "create a wallet", run: s.createWallet},
		{names: []string{"commit_transaction", "transfer"}, help: "move funds between two wallets", run: s.transfer},
		{names: []string{"check_balance", "balance"}, help: "show the balance of a wallet", run: s.checkBalance},
		{names: []string{"display_chain", "chain"}, help: "show the latest block, block N, or 'all'", run: s.displayChain},
		{names: []string{"list_wallets", "wallets"}, help: "list every wallet in creation order", run: s.listWallets},
		{names: []string{"verify_chain", "verify"}, help: "recompute every hash and link of the chain", run: s.verifyChain},
		{names: []string{"help"}, help: "show this list", run: s.help},
		{names: []string{"exit_0", "exit"}, help: "leave the shell", run: func(context.Context, []string) error { return errExit }},
	}

	return s
}

func isInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// isEndOfInput reports whether err means no more answers will come.
func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func (s *shell) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *shell) lookup(name string) (shellCommand, bool) {
	for _, c := range s.commands {
		for _, n := range c.names {
			if n == name {
				return c, true
			}
		}
	}
	return shellCommand{}, false
}

// Run reads commands until exit, end of input or ctx cancellation.
//
// Failed commands are reported and the loop continues; only prompter failures
// other than end of input are returned.
func (s *shell) Run(ctx context.Context) error {
	for {
		line, err := s.prompter.Text(ctx, commandPrompt, "")
		if err != nil {
			if isEndOfInput(err) {
				return nil
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		cmd, ok := s.lookup(fields[0])
		if !ok {
			s.print(renderError(fmt.Errorf("%w: unknown command %q, type 'help' for the list", ErrInvalidInput, fields[0])))
			continue
		}

		logger.Debug(ctx, "shell command", "command", cmd.names[0])

		err = cmd.run(ctx, fields[1:])
		switch {
		case err == nil:
		case errors.Is(err, errExit):
			return nil
		case isEndOfInput(err):
			return nil
		default:
			s.print(renderError(err))
		}
	}
}

// ask runs step, re-running it while it fails with ErrInvalidInput and attempts
// remain. Each rejected answer is reported before the next attempt.
func (s *shell) ask(ctx context.Context, step func() error) error {
	err := s.retry.Execute(ctx, func() error {
		err := step()
		if isInvalidInput(err) {
			s.print(renderError(err))
		}
		return err
	})
	if isInvalidInput(err) {
		return fmt.Errorf("%w after %d attempts", ErrTooManyAttempts, s.cfg.InputAttempts)
	}

	return err
}

func (s *shell) askAmount(ctx context.Context, label, defaultValue string) (decimal.Decimal, error) {
	var value decimal.Decimal

	err := s.ask(ctx, func() error {
		answer, err := s.prompter.Text(ctx, label, defaultValue)
		if err != nil {
			return err
		}

		value, err = amount.Parse(answer)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil
	})

	return value, err
}

func (s *shell) askWallet(ctx context.Context, label string, options []string) (string, error) {
	var identity string

	err := s.ask(ctx, func() error {
		var err error
		identity, err = s.prompter.Select(ctx, label, options)
		return err
	})

	return identity, err
}

func (s *shell) identities(ctx context.Context) []string {
	wallets := s.wr.Wallets(ctx)

	out := make([]string, 0, len(wallets))
	for _, w := range wallets {
		out = append(out, w.Identity)
	}
	return out
}

func (s *shell) createWallet(ctx context.Context, _ []string) error {
	var identity string

	err := s.ask(ctx, func() error {
		answer, err := s.prompter.Text(ctx, "Enter your username", "")
		if err != nil {
			return err
		}

		if answer == "" {
			return fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
		}

		identity = answer
		return nil
	})
	if err != nil {
		return err
	}

	label := fmt.Sprintf("Enter your initial balance of %s", s.cfg.Currency)
	initial, err := s.askAmount(ctx, label, s.cfg.DefaultInitialBalance.String())
	if err != nil {
		return err
	}

	w, err := s.wr.CreateWallet(ctx, identity, initial)
	if err != nil {
		return err
	}

	s.print(renderSuccess("Wallet created for %s. Initial balance: %s %s. Address: %s",
		w.Identity, w.Balance.String(), s.cfg.Currency, w.Address))
	return nil
}

func (s *shell) transfer(ctx context.Context, _ []string) error {
	identities := s.identities(ctx)
	if len(identities) < 2 {
		return errors.New("a transfer needs at least two wallets, create more with 'user_creation'")
	}

	sender, err := s.askWallet(ctx, "Choose the sender", identities)
	if err != nil {
		return err
	}

	receivers := make([]string, 0, len(identities)-1)
	for _, identity := range identities {
		if identity != sender {
			receivers = append(receivers, identity)
		}
	}

	receiver, err := s.askWallet(ctx, "Choose the receiver", receivers)
	if err != nil {
		return err
	}

	amt, err := s.askAmount(ctx, fmt.Sprintf("Enter the amount of %s to send", s.cfg.Currency), "")
	if err != nil {
		return err
	}

	block, err := s.wr.Transfer(ctx, sender, receiver, amt)
	if err != nil {
		return err
	}

	s.print(renderSuccess("Transaction committed. Current block of the blockchain:"))
	s.print(renderBlock(block, s.cfg.Currency))
	return nil
}

func (s *shell) checkBalance(ctx context.Context, _ []string) error {
	identities := s.identities(ctx)
	if len(identities) == 0 {
		return errors.New("no wallets registered yet, create one with 'user_creation'")
	}

	identity, err := s.askWallet(ctx, "Choose a wallet to check balance", identities)
	if err != nil {
		return err
	}

	balance, err := s.wr.BalanceOf(ctx, identity)
	if err != nil {
		return err
	}

	s.print(renderInfo("Balance of %s's wallet: %s %s.", identity, balance.String(), s.cfg.Currency))
	return nil
}

func (s *shell) displayChain(_ context.Context, args []string) error {
	if len(args) == 0 {
		block, err := s.ledger.Latest()
		if err != nil {
			return err
		}

		s.print(renderInfo("Current block of the blockchain:"))
		s.print(renderBlock(block, s.cfg.Currency))
		return nil
	}

	if args[0] == "all" {
		for _, block := range s.ledger.Blocks() {
			s.print(renderBlock(block, s.cfg.Currency))
		}
		return nil
	}

	index, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: block index %q is not a number", ErrInvalidInput, args[0])
	}

	block, err := s.ledger.Get(index)
	if err != nil {
		return err
	}

	s.print(renderBlock(block, s.cfg.Currency))
	return nil
}

func (s *shell) listWallets(ctx context.Context, _ []string) error {
	table, err := renderWallets(s.wr.Wallets(ctx), s.cfg.Currency)
	if err != nil {
		return err
	}

	s.print(table)
	return nil
}

func (s *shell) verifyChain(_ context.Context, _ []string) error {
	if err := s.ledger.Verify(); err != nil {
		return err
	}

	s.print(renderSuccess("Chain verified: %d blocks, %s digest.", s.ledger.Len(), s.ledger.Digest()))
	return nil
}

func (s *shell) help(_ context.Context, _ []string) error {
	var b strings.Builder
	for _, c := range s.commands {
		fmt.Fprintf(&b, "  %-34s %s\n", strings.Join(c.names, ", "), c.help)
	}

	s.print(renderInfo("Commands:"))
	s.print(b.String())
	return nil
}
