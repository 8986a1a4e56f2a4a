package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gabapcia/blockledger/internal/pkg/x/chflow"

	"github.com/pterm/pterm"
)

var (
	// ErrInvalidInput is returned by prompters and parsers for input the user can
	// correct by answering again.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoOptions is returned by Select when there is nothing to choose from.
	ErrNoOptions = errors.New("no options to choose from")
)

// Prompter asks the user for input.
type Prompter interface {
	// Text asks for a free-form answer. An empty answer yields defaultValue.
	Text(ctx context.Context, label, defaultValue string) (string, error)

	// Select asks the user to pick one of options and returns the chosen option.
	Select(ctx context.Context, label string, options []string) (string, error)
}

// ptermPrompter drives pterm's interactive widgets on a terminal.
type ptermPrompter struct{}

var _ Prompter = ptermPrompter{}

func (ptermPrompter) Text(ctx context.Context, label, defaultValue string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultText(label).
		WithDefaultValue(defaultValue).
		Show()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

func (ptermPrompter) Select(ctx context.Context, label string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(options) == 0 {
		return "", ErrNoOptions
	}

	return pterm.DefaultInteractiveSelect.
		WithDefaultText(label).
		WithOptions(options).
		Show()
}

// linePrompter reads one answer per line. It serves piped stdin and script files.
type linePrompter struct {
	lines <-chan string
	out   io.Writer
}

var _ Prompter = (*linePrompter)(nil)

// newLinePrompter starts a goroutine that scans r line by line until EOF or
// until ctx is done. Prompts are written to out.
func newLinePrompter(ctx context.Context, r io.Reader, out io.Writer) *linePrompter {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return &linePrompter{
		lines: lines,
		out:   out,
	}
}

func (p *linePrompter) readLine(ctx context.Context) (string, error) {
	line, err := chflow.Receive(ctx, p.lines)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (p *linePrompter) Text(ctx context.Context, label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}

	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Select lists the options and expects one of them typed back verbatim.
func (p *linePrompter) Select(ctx context.Context, label string, options []string) (string, error) {
	if len(options) == 0 {
		return "", ErrNoOptions
	}

	fmt.Fprintf(p.out, "%s (%s): ", label, strings.Join(options, ", "))

	answer, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}

	if !slices.Contains(options, answer) {
		return "", fmt.Errorf("%w: %q is not one of %s", ErrInvalidInput, answer, strings.Join(options, ", "))
	}

	return answer, nil
}
