package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/pkg/logger"
	"github.com/gabapcia/blockledger/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// shellFlags are declared on the root command so that both `blockledger` and
// `blockledger shell` accept them.
func shellFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "script",
			Usage:     "Read commands and answers line by line from `FILE` instead of prompting",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "plain",
			Usage: "Read answers line by line from stdin without interactive widgets",
		},
	}
}

// shellAction builds the prompter selected by the flags and runs the shell
// until exit or end of input.
func shellAction(cfg RunConfig, l *ledger.Ledger, wr walletregistry.Service) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		var (
			out    = c.Root().Writer
			script = c.String("script")
			p      Prompter
			mode   string
		)

		switch {
		case script != "":
			f, err := os.Open(script)
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()

			p, mode = newLinePrompter(ctx, f, out), "script"
		case c.Bool("plain"):
			p, mode = newLinePrompter(ctx, c.Root().Reader, out), "plain"
		default:
			p, mode = ptermPrompter{}, "interactive"
		}

		ctx = logger.Derive(ctx, "shell.mode", mode)
		logger.Info(ctx, "shell started", "ledger.digest", string(l.Digest()))

		if err := newShell(cfg, l, wr, p, out).Run(ctx); err != nil {
			logger.Error(ctx, "shell stopped", "error", err)
			return err
		}

		logger.Info(ctx, "shell stopped", "ledger.length", l.Len())
		return nil
	}
}

// startShellCommand returns a CLI command that starts the interactive shell.
//
// Usage example:
//
//	blockledger shell --plain < session.txt
func startShellCommand(cfg RunConfig, l *ledger.Ledger, wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "shell",
		Description: "Create wallets, commit transfers and inspect the chain from an interactive prompt.",
		Usage:       "Starts the interactive shell. Ends on 'exit_0', end of input or Ctrl+C.",
		Action:      shellAction(cfg, l, wr),
	}
}

// verifyCommand returns a CLI command that recomputes every hash and link of the chain.
//
// Usage example:
//
//	blockledger verify
func verifyCommand(cfg RunConfig, l *ledger.Ledger) *cli.Command {
	return &cli.Command{
		Name:        "verify",
		Description: "Recompute the digest of every block and check that each block links to its predecessor.",
		Usage:       "Verifies the chain and reports its length and digest.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := l.Verify(); err != nil {
				return err
			}

			fmt.Fprint(c.Root().Writer, renderSuccess("Chain verified: %d blocks, %s digest.", l.Len(), l.Digest()))

			latest, err := l.Latest()
			if err != nil {
				return err
			}

			fmt.Fprint(c.Root().Writer, renderBlock(latest, cfg.Currency))
			return nil
		},
	}
}

// digestCommand returns a CLI command that prints the configured digest and the
// genesis hash it produces.
//
// Usage example:
//
//	BLOCKLEDGER_DIGEST=blake2b blockledger digest
func digestCommand(l *ledger.Ledger) *cli.Command {
	return &cli.Command{
		Name:        "digest",
		Description: "Print the digest algorithm sealing blocks and the hash of the genesis block.",
		Usage:       "Shows the digest algorithm and the genesis hash.",
		Action: func(ctx context.Context, c *cli.Command) error {
			genesis, err := l.Get(0)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%s %s\n", l.Digest(), genesis.Hash.Hex())
			return nil
		},
	}
}
