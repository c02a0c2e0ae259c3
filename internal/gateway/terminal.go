package gateway

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/rahul/countrybot/internal/agent"
	"github.com/rahul/countrybot/internal/observability"
)

const (
	QuitKeyword = "quit"

	greeting   = "Country Information Bot (type 'quit' to exit)"
	askCountry = "Enter a country name: "
	reminder   = "Please enter a country name"
	retryHint  = "Please try another Country"
)

// Terminal is the interactive prompt loop. It handles one query at a time
// and blocks on the brain until the answer or an error comes back.
type Terminal struct {
	Brain agent.Brain

	in      *bufio.Scanner
	out     io.Writer
	stopped atomic.Bool
}

var _ Messenger = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer, brain agent.Brain) *Terminal {
	return &Terminal{
		Brain: brain,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Start prompts until the user types quit, input ends, or Stop is called.
// A failed query is reported and the loop keeps going; only a read error
// or a cancelled ctx is returned.
func (t *Terminal) Start(ctx context.Context) error {
	t.Send(observability.PromptStyle.Render(greeting))

	for {
		if t.stopped.Load() {
			return nil
		}

		fmt.Fprint(t.out, "\n"+observability.PromptStyle.Render(askCountry))
		if !t.in.Scan() {
			if err := t.in.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(t.out)
			return nil
		}

		country := strings.TrimSpace(t.in.Text())
		if strings.EqualFold(country, QuitKeyword) {
			return nil
		}
		if country == "" {
			t.Send(observability.HintStyle.Render(reminder))
			continue
		}

		response, err := t.Brain.Think(ctx, country)
		if err != nil {
			t.Send("\n" + observability.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
			t.Send(observability.HintStyle.Render(retryHint))
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		t.Send("\n" + response)
	}
}

func (t *Terminal) Send(text string) error {
	_, err := fmt.Fprintln(t.out, text)
	return err
}

func (t *Terminal) Stop() error {
	t.stopped.Store(true)
	return nil
}
