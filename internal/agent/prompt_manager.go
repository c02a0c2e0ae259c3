package agent

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/rahul/countrybot/internal/profile"
	"github.com/rahul/countrybot/internal/tools"
)

const orchestratorPromptFile = "orchestrator.md"

//go:embed prompts/*.md
var embeddedPrompts embed.FS

// PromptManager renders the orchestration prompt from a prompt directory.
type PromptManager struct {
	FS fs.FS
}

// NewPromptManager reads prompts from fsys, or from the prompts compiled
// into the binary when fsys is nil.
func NewPromptManager(fsys fs.FS) *PromptManager {
	if fsys == nil {
		sub, err := fs.Sub(embeddedPrompts, "prompts")
		if err != nil {
			panic(err)
		}
		fsys = sub
	}
	return &PromptManager{FS: fsys}
}

type promptData struct {
	Tools        []tools.Tool
	Layout       string
	NotAvailable string
}

var promptFuncs = template.FuncMap{
	"indent": indent,
}

// GetOrchestratorPrompt renders the orchestration prompt for the tools in
// registry, listed in registration order.
func (pm *PromptManager) GetOrchestratorPrompt(registry *tools.Registry) (string, error) {
	data, err := fs.ReadFile(pm.FS, orchestratorPromptFile)
	if err != nil {
		return "", fmt.Errorf("failed to read orchestrator prompt: %w", err)
	}

	tmpl, err := template.New(orchestratorPromptFile).Funcs(promptFuncs).Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse orchestrator prompt: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, promptData{
		Tools:        registry.List(),
		Layout:       profile.Template(),
		NotAvailable: profile.NotAvailable,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render orchestrator prompt: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func indent(n int, s string) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = pad + l
		}
	}
	return strings.Join(lines, "\n")
}
