package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rahul/countrybot/internal/countries"
)

const (
	CapitalToolName    = "get_capital"
	LanguageToolName   = "get_language"
	PopulationToolName = "get_population"
)

// LookupTool exposes a country table to the model as a single-argument tool.
type LookupTool struct {
	name        string
	description string
	Table       *countries.Table
}

func NewLookupTool(name, description string, table *countries.Table) *LookupTool {
	return &LookupTool{name: name, description: description, Table: table}
}

func NewCapitalTool() *LookupTool {
	return NewLookupTool(CapitalToolName,
		"Returns the capital of the given country (case-insensitive)", countries.Capitals)
}

func NewLanguageTool() *LookupTool {
	return NewLookupTool(LanguageToolName,
		"Returns the primary language(s) of the given country (case-insensitive)", countries.Languages)
}

func NewPopulationTool() *LookupTool {
	return NewLookupTool(PopulationToolName,
		"Returns the approximate population of the given country (case-insensitive)", countries.Populations)
}

// NewLookupRegistry registers the three lookups in their mandatory call order.
func NewLookupRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(NewCapitalTool())
	registry.Register(NewLanguageTool())
	registry.Register(NewPopulationTool())
	return registry
}

func (l *LookupTool) Name() string {
	return l.name
}

func (l *LookupTool) Description() string {
	return l.description
}

func (l *LookupTool) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"country": map[string]any{
				"type":        "string",
				"description": "The country name, e.g. 'Japan'",
			},
		},
		"required": []string{"country"},
	}
}

func (l *LookupTool) Execute(ctx context.Context, input string) (string, error) {
	var args struct {
		Country string `json:"country"`
	}
	if err := json.Unmarshal([]byte(input), &args); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	return l.Table.Lookup(args.Country), nil
}
