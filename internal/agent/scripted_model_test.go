package agent

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
)

// scriptedModel replays canned responses and records what it was sent.
type scriptedModel struct {
	steps []scriptedStep
	calls [][]llms.MessageContent
	tools [][]llms.Tool
}

type scriptedStep struct {
	resp *llms.ContentResponse
	err  error
}

func (m *scriptedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	var opts llms.CallOptions
	for _, o := range options {
		o(&opts)
	}
	m.calls = append(m.calls, append([]llms.MessageContent(nil), messages...))
	m.tools = append(m.tools, opts.Tools)

	if len(m.calls) > len(m.steps) {
		return nil, fmt.Errorf("unexpected call %d", len(m.calls))
	}
	step := m.steps[len(m.calls)-1]
	return step.resp, step.err
}

func (m *scriptedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}

func toolCalls(country string, names ...string) scriptedStep {
	var calls []llms.ToolCall
	for i, name := range names {
		calls = append(calls, llms.ToolCall{
			ID:   fmt.Sprintf("call_%d", i+1),
			Type: "function",
			FunctionCall: &llms.FunctionCall{
				Name:      name,
				Arguments: fmt.Sprintf(`{"country":%q}`, country),
			},
		})
	}
	return scriptedStep{resp: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{ToolCalls: calls}},
	}}
}

func answer(text string) scriptedStep {
	return scriptedStep{resp: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{
			Content:        text,
			GenerationInfo: map[string]any{"PromptTokens": 120, "CompletionTokens": 80},
		}},
	}}
}

// toolResponses collects the tool results in the order they were sent.
func toolResponses(messages []llms.MessageContent) []string {
	var out []string
	for _, msg := range messages {
		if msg.Role != llms.ChatMessageTypeTool {
			continue
		}
		for _, part := range msg.Parts {
			if r, ok := part.(llms.ToolCallResponse); ok {
				out = append(out, r.Name+"="+r.Content)
			}
		}
	}
	return out
}

func lastHumanText(messages []llms.MessageContent) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role != llms.ChatMessageTypeHuman {
			continue
		}
		for _, part := range messages[i].Parts {
			if t, ok := part.(llms.TextContent); ok {
				return t.Text
			}
		}
	}
	return ""
}
