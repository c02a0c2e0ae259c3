package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypeQuery       EventType = "query"
	EventTypeQueryError  EventType = "query_error"
	EventTypeToolCall    EventType = "tool_call"
	EventTypeToolResult  EventType = "tool_result"
	EventTypePolicyCheck EventType = "policy_check"
	EventTypeLayout      EventType = "layout"
	EventTypeCost        EventType = "cost"
	EventTypeLLM         EventType = "llm"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	QueryID   string    `json:"query_id,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger handles structured logging. Events go to a JSONL file when a path
// is configured and to Echo when it is set; otherwise they are dropped.
type Logger struct {
	mu      sync.Mutex
	path    string
	maxSize int64

	// Echo additionally receives every event line.
	Echo io.Writer
}

// NewLogger returns a logger appending to path. An empty path disables the
// file sink.
func NewLogger(path string) *Logger {
	return &Logger{
		path:    path,
		maxSize: 10 * 1024 * 1024, // 10MB
	}
}

// Enabled reports whether events have anywhere to go.
func (l *Logger) Enabled() bool {
	return l != nil && (l.path != "" || l.Echo != nil)
}

// Log emits a structured JSON event.
func (l *Logger) Log(evt Event) {
	if !l.Enabled() {
		return
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("[ WARN ] failed to marshal event: %v", err)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Echo != nil {
		fmt.Fprintln(l.Echo, string(data))
	}
	if l.path != "" {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("[ WARN ] failed to create log directory: %v", err)
			return
		}
	}

	// Check size before writing
	info, err := os.Stat(l.path)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("[ WARN ] failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("[ WARN ] failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.path + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.path, oldPath)
}

// Helper methods for common events

func (l *Logger) LogQuery(queryID, country string) {
	l.Log(Event{
		Type:    EventTypeQuery,
		QueryID: queryID,
		Data:    map[string]string{"country": country},
	})
}

func (l *Logger) LogQueryError(queryID string, err error) {
	l.Log(Event{
		Type:    EventTypeQueryError,
		QueryID: queryID,
		Data:    map[string]string{"error": err.Error()},
	})
}

func (l *Logger) LogToolCall(queryID, tool, args string) {
	l.Log(Event{
		Type:    EventTypeToolCall,
		QueryID: queryID,
		Data: map[string]string{
			"tool": tool,
			"args": args,
		},
	})
}

func (l *Logger) LogToolResult(queryID, tool, result string) {
	l.Log(Event{
		Type:    EventTypeToolResult,
		QueryID: queryID,
		Data: map[string]string{
			"tool":   tool,
			"result": result,
		},
	})
}

func (l *Logger) LogPolicyCheck(queryID, effect, reason string) {
	l.Log(Event{
		Type:    EventTypePolicyCheck,
		QueryID: queryID,
		Data: map[string]string{
			"effect": effect,
			"reason": reason,
		},
	})
}

func (l *Logger) LogLayout(queryID string, missing []string) {
	l.Log(Event{
		Type:    EventTypeLayout,
		QueryID: queryID,
		Data:    map[string]any{"missing": missing},
	})
}

func (l *Logger) LogCost(queryID string, promptTokens, completionTokens int, model string) {
	l.Log(Event{
		Type:    EventTypeCost,
		QueryID: queryID,
		Data: map[string]any{
			"prompt_tokens":     promptTokens,
			"completion_tokens": completionTokens,
			"total_tokens":      promptTokens + completionTokens,
			"model":             model,
		},
	})
}

func (l *Logger) LogLLM(queryID string, step int, response string, toolCalls any) {
	l.Log(Event{
		Type:    EventTypeLLM,
		QueryID: queryID,
		Data: map[string]any{
			"step":       step,
			"response":   response,
			"tool_calls": toolCalls,
		},
	})
}
