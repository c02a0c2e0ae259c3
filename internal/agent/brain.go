package agent

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahul/countrybot/internal/governance"
	"github.com/rahul/countrybot/internal/observability"
	"github.com/rahul/countrybot/internal/tools"
	"github.com/tmc/langchaingo/llms"
)

var (
	ErrNoChoices       = errors.New("model returned no choices")
	ErrEmptyAnswer     = errors.New("model returned an empty answer")
	ErrMaxSteps        = errors.New("reached the maximum number of reasoning steps")
	ErrPolicyViolation = errors.New("answer rejected by policy")
)

// Brain defines the core intelligence interface for the agent.
type Brain interface {
	Think(ctx context.Context, country string) (string, error)
}

// Executor runs one request against a generation service with a set of
// callable tools and returns the final text.
type Executor interface {
	Execute(ctx context.Context, systemPrompt string, registry *tools.Registry, input string) (string, error)
}

type queryIDKey struct{}

// WithQueryID tags ctx with the id used in event logs.
func WithQueryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, queryIDKey{}, id)
}

func QueryIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(queryIDKey{}).(string)
	return id
}

// Runner is a ReAct executor over a langchaingo model.
type Runner struct {
	Model     llms.Model
	ModelName string
	Policy    governance.PolicyEngine
	Logger    *observability.Logger

	// MaxSteps bounds model turns per request.
	MaxSteps int
	// MaxCorrections bounds how often a rejected answer is sent back.
	MaxCorrections int
}

func NewRunner(model llms.Model, modelName string, policy governance.PolicyEngine, logger *observability.Logger) *Runner {
	return &Runner{
		Model:          model,
		ModelName:      modelName,
		Policy:         policy,
		Logger:         logger,
		MaxSteps:       10,
		MaxCorrections: 2,
	}
}

func (r *Runner) Execute(ctx context.Context, systemPrompt string, registry *tools.Registry, input string) (string, error) {
	queryID := QueryIDFrom(ctx)

	// 1. Prepare messages (System Prompt + current input)
	var messages []llms.MessageContent
	if systemPrompt != "" {
		messages = append(messages, llms.MessageContent{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		})
	}

	messages = append(messages, llms.MessageContent{
		Role: llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{
			llms.TextPart(input),
		},
	})

	// 2. Prepare tools for the LLM
	var llmTools []llms.Tool
	for _, t := range registry.List() {
		llmTools = append(llmTools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}

	// 3. Reasoning Loop (ReAct)
	var called []string
	corrections := 0

	for i := 0; i < r.MaxSteps; i++ {
		resp, err := r.Model.GenerateContent(ctx, messages, llms.WithTools(llmTools))
		if err != nil {
			return "", fmt.Errorf("generate content: %w", err)
		}
		if resp == nil || len(resp.Choices) == 0 || resp.Choices[0] == nil {
			return "", ErrNoChoices
		}

		choice := resp.Choices[0]
		r.Logger.LogLLM(queryID, i+1, choice.Content, choice.ToolCalls)
		r.logUsage(queryID, choice)

		// Add Assistant's message to history
		var assistantParts []llms.ContentPart
		if choice.Content != "" {
			assistantParts = append(assistantParts, llms.TextContent{Text: choice.Content})
		}
		for _, tc := range choice.ToolCalls {
			assistantParts = append(assistantParts, tc)
		}

		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeAI,
			Parts: assistantParts,
		})

		// If no tool calls, this is the final answer
		if len(choice.ToolCalls) == 0 {
			if choice.Content == "" {
				return "", ErrEmptyAnswer
			}

			res, err := r.evaluate(ctx, called, choice.Content)
			if err != nil {
				return "", err
			}
			r.Logger.LogPolicyCheck(queryID, string(res.Effect), res.Reason)
			if res.Effect == governance.EffectAllow {
				return choice.Content, nil
			}
			if corrections >= r.MaxCorrections {
				return "", fmt.Errorf("%w: %s", ErrPolicyViolation, res.Reason)
			}
			corrections++
			messages = append(messages, llms.MessageContent{
				Role:  llms.ChatMessageTypeHuman,
				Parts: []llms.ContentPart{llms.TextPart(res.Reason)},
			})
			continue
		}

		// Handle Tool Calls (Observe results)
		for _, tc := range choice.ToolCalls {
			name, args := "", ""
			if tc.FunctionCall != nil {
				name, args = tc.FunctionCall.Name, tc.FunctionCall.Arguments
			}

			tool := registry.Get(name)
			var result string

			if tool == nil {
				result = fmt.Sprintf("Error: Tool %s not found", name)
			} else {
				r.Logger.LogToolCall(queryID, name, args)
				res, err := tool.Execute(ctx, args)
				if err != nil {
					res = fmt.Sprintf("Error: %v", err)
				} else {
					called = append(called, name)
				}
				result = res
				r.Logger.LogToolResult(queryID, name, result)
			}

			// Add tool result to messages for the next turn
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: tc.ID,
						Name:       name,
						Content:    result,
					},
				},
			})
		}
	}

	return "", ErrMaxSteps
}

func (r *Runner) evaluate(ctx context.Context, called []string, answer string) (governance.Result, error) {
	if r.Policy == nil {
		return governance.Result{Effect: governance.EffectAllow}, nil
	}
	res, err := r.Policy.Evaluate(ctx, governance.Request{Tools: called, Answer: answer})
	if err != nil {
		return res, fmt.Errorf("policy evaluation: %w", err)
	}
	return res, nil
}

func (r *Runner) logUsage(queryID string, choice *llms.ContentChoice) {
	prompt, okP := choice.GenerationInfo["PromptTokens"].(int)
	completion, okC := choice.GenerationInfo["CompletionTokens"].(int)
	if okP || okC {
		r.Logger.LogCost(queryID, prompt, completion, r.ModelName)
	}
}
