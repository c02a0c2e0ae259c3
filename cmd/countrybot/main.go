package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rahul/countrybot/internal/agent"
	"github.com/rahul/countrybot/internal/gateway"
	"github.com/rahul/countrybot/internal/governance"
	"github.com/rahul/countrybot/internal/observability"
	"github.com/rahul/countrybot/internal/tools"
	"github.com/rahul/countrybot/pkg/config"
	"github.com/spf13/cobra"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

func main() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countrybot",
		Short: "Ask about a country and get a short profile",
		Long: `countrybot answers "tell me about country X". Capital, language and
population come from built-in tables; an attraction, a dish and a cultural
fact are generated by the model. Type 'quit' to exit.

Environment:
  GEMINI_API_KEY        API key for the generation service (required)
  COUNTRYBOT_PROVIDER   openai (default) or googleai
  COUNTRYBOT_MODEL      model name (default gemini-2.0-flash)
  COUNTRYBOT_BASE_URL   OpenAI-compatible endpoint
  COUNTRYBOT_EVENT_LOG  JSONL event log path (disabled when empty)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func run(parent context.Context, in io.Reader, out io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("[ FAIL ] %v", err)
		return err
	}

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	llm, err := newModel(ctx, cfg.Provider)
	if err != nil {
		log.Printf("[ FAIL ] %v", err)
		return err
	}

	logger := observability.NewLogger(cfg.Logging.EventLog)
	registry := tools.NewLookupRegistry()
	policy := governance.NewCountryPolicy(registry.Names()...)
	runner := agent.NewRunner(llm, cfg.Provider.Model, policy, logger)

	brain, err := agent.NewCountryBrain(runner, registry, agent.NewPromptManager(nil), logger)
	if err != nil {
		log.Printf("[ FAIL ] %v", err)
		return err
	}

	observability.PrintBanner(out)
	term := gateway.NewTerminal(in, out, brain)

	// Reading stdin cannot be interrupted, so the loop runs in a goroutine
	// and a signal ends the process without waiting for it.
	done := make(chan error, 1)
	go func() {
		done <- term.Start(ctx)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		_ = term.Stop()
		fmt.Fprintln(out)
		err = nil
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("[ FAIL ] %v", err)
		return err
	}
	return nil
}

func newModel(ctx context.Context, p config.ProviderConfig) (llms.Model, error) {
	switch p.Name {
	case config.ProviderOpenAI:
		opts := []openai.Option{
			openai.WithToken(p.APIKey),
			openai.WithModel(p.Model),
		}
		if p.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(p.BaseURL))
		}
		return openai.New(opts...)
	case config.ProviderGoogleAI:
		return googleai.New(ctx,
			googleai.WithAPIKey(p.APIKey),
			googleai.WithDefaultModel(p.Model),
		)
	default:
		return nil, fmt.Errorf("provider %s not yet implemented", p.Name)
	}
}
