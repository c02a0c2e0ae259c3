package agent

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rahul/countrybot/internal/observability"
	"github.com/rahul/countrybot/internal/profile"
	"github.com/rahul/countrybot/internal/tools"
)

type executorFunc func(ctx context.Context, systemPrompt string, registry *tools.Registry, input string) (string, error)

func (f executorFunc) Execute(ctx context.Context, systemPrompt string, registry *tools.Registry, input string) (string, error) {
	return f(ctx, systemPrompt, registry, input)
}

func TestCountryBrain_Think(t *testing.T) {
	var gotPrompt, gotInput, gotQueryID string
	exec := executorFunc(func(ctx context.Context, systemPrompt string, registry *tools.Registry, input string) (string, error) {
		gotPrompt, gotInput, gotQueryID = systemPrompt, input, QueryIDFrom(ctx)
		return profile.Render(profile.Profile{
			Country: "Japan", Capital: "Tokyo", Language: "Japanese", Population: "125 million",
			MustSee: "Mount Fuji", MustTry: "Sushi - rice and raw fish", DidYouKnow: "Bowing is a greeting.",
		}), nil
	})

	var events bytes.Buffer
	logger := observability.NewLogger("")
	logger.Echo = &events

	brain, err := NewCountryBrain(exec, tools.NewLookupRegistry(), NewPromptManager(nil), logger)
	if err != nil {
		t.Fatal(err)
	}

	out, err := brain.Think(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("Think failed: %v", err)
	}
	if !strings.Contains(out, "Capital: Tokyo") {
		t.Errorf("answer = %q", out)
	}
	if gotInput != "Get complete information for: Japan" {
		t.Errorf("input = %q", gotInput)
	}
	if gotPrompt != brain.Prompt() || !strings.Contains(gotPrompt, "get_capital") {
		t.Errorf("executor received unexpected prompt")
	}
	if gotQueryID == "" {
		t.Error("query id missing from context")
	}
	if strings.Contains(events.String(), `"type":"layout"`) {
		t.Errorf("complete layout should not be flagged: %s", events.String())
	}
}

func TestCountryBrain_RecordsLayoutMismatch(t *testing.T) {
	exec := executorFunc(func(context.Context, string, *tools.Registry, string) (string, error) {
		return "Country: Japan\nCapital: Tokyo", nil
	})
	var events bytes.Buffer
	logger := observability.NewLogger("")
	logger.Echo = &events

	brain, err := NewCountryBrain(exec, tools.NewLookupRegistry(), NewPromptManager(nil), logger)
	if err != nil {
		t.Fatal(err)
	}
	out, err := brain.Think(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("Think failed: %v", err)
	}
	if out != "Country: Japan\nCapital: Tokyo" {
		t.Errorf("answer should be returned unchanged, got %q", out)
	}
	if !strings.Contains(events.String(), `"type":"layout"`) || !strings.Contains(events.String(), "Did You Know") {
		t.Errorf("expected layout event naming missing rows: %s", events.String())
	}
}

func TestCountryBrain_PropagatesErrors(t *testing.T) {
	boom := errors.New("upstream unavailable")
	exec := executorFunc(func(context.Context, string, *tools.Registry, string) (string, error) {
		return "", boom
	})
	var events bytes.Buffer
	logger := observability.NewLogger("")
	logger.Echo = &events

	brain, err := NewCountryBrain(exec, tools.NewLookupRegistry(), NewPromptManager(nil), logger)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := brain.Think(context.Background(), "Japan"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
	if !strings.Contains(events.String(), `"type":"query_error"`) {
		t.Errorf("expected query_error event: %s", events.String())
	}
}

func TestNewCountryBrain_PromptError(t *testing.T) {
	_, err := NewCountryBrain(nil, tools.NewLookupRegistry(), NewPromptManager(fstest.MapFS{}), nil)
	if err == nil {
		t.Error("expected error when the prompt cannot be loaded")
	}
}

func TestCountryBrain_WithRunner(t *testing.T) {
	model := &scriptedModel{steps: []scriptedStep{
		toolCalls("Narnia", lookups...),
		answer(profile.Render(profile.Profile{
			Country: "Narnia", Capital: profile.NotAvailable, Language: profile.NotAvailable,
			Population: profile.NotAvailable, MustSee: "Cair Paravel", MustTry: "Turkish delight - a sweet",
			DidYouKnow: "It is always winter.",
		})),
	}}
	runner, _ := newTestRunner(model)

	brain, err := NewCountryBrain(runner, tools.NewLookupRegistry(), NewPromptManager(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := brain.Think(context.Background(), "Narnia")
	if err != nil {
		t.Fatalf("Think failed: %v", err)
	}
	if !strings.Contains(out, "Capital: Not available") {
		t.Errorf("answer = %q", out)
	}
}
