package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/blockledger/internal/ledger"
	"github.com/gabapcia/blockledger/internal/walletregistry"

	"github.com/pterm/pterm"
)

// renderBlock formats a block as a titled box.
func renderBlock(b ledger.Block, currency string) string {
	body := strings.Join([]string{
		fmt.Sprintf("Block #%d", b.Index),
		"Previous Hash: " + b.PreviousHash.Hex(),
		"Timestamp: " + b.Timestamp.Format(time.RFC3339Nano),
		"Data: " + b.Payload.Description(currency),
		"Hash: " + b.Hash.Hex(),
	}, "\n")

	return pterm.DefaultBox.WithTitle(b.Payload.Kind.String()).Sprintln(body)
}

func renderWallets(wallets []walletregistry.Wallet, currency string) (string, error) {
	if len(wallets) == 0 {
		return renderInfo("No wallets registered yet."), nil
	}

	data := pterm.TableData{{"Identity", "Address", "Balance (" + currency + ")"}}
	for _, w := range wallets {
		data = append(data, []string{w.Identity, w.Address, w.Balance.String()})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	return table + "\n", nil
}

func renderInfo(format string, a ...any) string {
	return pterm.Info.Sprintfln(format, a...)
}

func renderSuccess(format string, a ...any) string {
	return pterm.Success.Sprintfln(format, a...)
}

func renderError(err error) string {
	return pterm.Error.Sprintln(err.Error())
}
