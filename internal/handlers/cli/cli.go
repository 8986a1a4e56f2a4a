package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/walletregistry"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
)

// RunConfig carries the presentation settings of the CLI.
type RunConfig struct {
	Currency              string          // unit shown next to amounts
	DefaultInitialBalance decimal.Decimal // answer assumed when the balance prompt is left empty
	InputAttempts         uint            // attempts per prompt before the command is abandoned

	// Stdin and Stdout default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
}

// Run initializes and executes the blockledger CLI application.
//
// It registers all available commands, including:
//
//   - `shell`: Starts the interactive shell (also the default action).
//   - `verify`: Verifies every block of the chain.
//   - `digest`: Prints the digest algorithm and the genesis hash.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - cfg: Presentation settings and I/O streams.
//   - l: The ledger shown and verified by the commands.
//   - wr: The walletregistry service implementation used by the shell.
func Run(ctx context.Context, cfg RunConfig, l *ledger.Ledger, wr walletregistry.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockledger",
		Description:           "Educational ledger of hash-linked blocks recording transfers between wallets.",
		Usage:                 "blockledger [command] [flags]",
		Reader:                cfg.Stdin,
		Writer:                cfg.Stdout,
		Flags:                 shellFlags(),
		Action:                shellAction(cfg, l, wr),
		Commands: []*cli.Command{
			startShellCommand(cfg, l, wr),
			verifyCommand(cfg, l),
			digestCommand(l),
		},
	}

	return app.Run(ctx, os.Args)
}
