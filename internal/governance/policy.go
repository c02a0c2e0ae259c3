package governance

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Effect defines the result of a policy evaluation.
type Effect string

const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// Request describes a final answer the model wants to return.
type Request struct {
	// Tools holds the names of the tools invoked while producing Answer.
	Tools  []string
	Answer string
}

// Result contains the outcome of a policy evaluation.
type Result struct {
	Effect Effect
	Reason string
}

// PolicyEngine evaluates final answers against a set of rules.
type PolicyEngine interface {
	Evaluate(ctx context.Context, req Request) (Result, error)
}

// DefaultPolicyEngine is a basic implementation of PolicyEngine.
type DefaultPolicyEngine struct {
	RequiredTools []string
	DeniedRegex   []*regexp.Regexp
}

func NewDefaultPolicyEngine() *DefaultPolicyEngine {
	return &DefaultPolicyEngine{
		RequiredTools: make([]string, 0),
		DeniedRegex:   make([]*regexp.Regexp, 0),
	}
}

// NewCountryPolicy requires every named lookup to have been called and
// rejects apologetic answers.
func NewCountryPolicy(lookups ...string) *DefaultPolicyEngine {
	e := NewDefaultPolicyEngine()
	for _, name := range lookups {
		e.RequireTool(name)
	}
	_ = e.DenyAnswer(`(?i)\bsorry\b`)
	_ = e.DenyAnswer(`(?i)\bunfortunately\b`)
	return e
}

func (e *DefaultPolicyEngine) RequireTool(name string) {
	e.RequiredTools = append(e.RequiredTools, name)
}

func (e *DefaultPolicyEngine) DenyAnswer(pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	e.DeniedRegex = append(e.DeniedRegex, re)
	return nil
}

func (e *DefaultPolicyEngine) Evaluate(ctx context.Context, req Request) (Result, error) {
	called := make(map[string]bool, len(req.Tools))
	for _, name := range req.Tools {
		called[name] = true
	}

	var missing []string
	for _, name := range e.RequiredTools {
		if !called[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Result{
			Effect: EffectDeny,
			Reason: fmt.Sprintf("Call %s before giving the final answer", strings.Join(missing, ", ")),
		}, nil
	}

	for _, re := range e.DeniedRegex {
		if m := re.FindString(req.Answer); m != "" {
			return Result{
				Effect: EffectDeny,
				Reason: fmt.Sprintf("Rewrite the answer without the word %q; write \"Not available\" for missing data", m),
			}, nil
		}
	}

	return Result{
		Effect: EffectAllow,
		Reason: "Approved by default policy",
	}, nil
}
