package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rahul/countrybot/internal/observability"
	"github.com/rahul/countrybot/internal/profile"
	"github.com/rahul/countrybot/internal/tools"
)

// CountryBrain answers one country query per Think call. The prompt is
// rendered once; nothing is carried between queries.
type CountryBrain struct {
	Executor Executor
	Registry *tools.Registry
	Logger   *observability.Logger

	prompt string
}

func NewCountryBrain(executor Executor, registry *tools.Registry, prompts *PromptManager, logger *observability.Logger) (*CountryBrain, error) {
	prompt, err := prompts.GetOrchestratorPrompt(registry)
	if err != nil {
		return nil, err
	}
	return &CountryBrain{
		Executor: executor,
		Registry: registry,
		Logger:   logger,
		prompt:   prompt,
	}, nil
}

// Prompt returns the rendered orchestration prompt.
func (b *CountryBrain) Prompt() string {
	return b.prompt
}

func (b *CountryBrain) Think(ctx context.Context, country string) (string, error) {
	queryID := uuid.NewString()
	ctx = WithQueryID(ctx, queryID)
	b.Logger.LogQuery(queryID, country)

	answer, err := b.Executor.Execute(ctx, b.prompt, b.Registry, fmt.Sprintf("Get complete information for: %s", country))
	if err != nil {
		b.Logger.LogQueryError(queryID, err)
		return "", err
	}

	// The layout is the model's job; a mismatch is only recorded.
	p, err := profile.Parse(answer)
	if err != nil {
		b.Logger.LogLayout(queryID, []string{err.Error()})
	} else if missing := p.Missing(); len(missing) > 0 {
		b.Logger.LogLayout(queryID, missing)
	}

	return answer, nil
}
