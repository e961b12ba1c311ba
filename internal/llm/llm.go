package llm

import (
	"context"
	"time"
)

// TokenUsage tracks the tokens consumed by a request.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// ContentResponse contains the generated text and metadata like token usage.
type ContentResponse struct {
	Content string
	Usage   TokenUsage
	Latency time.Duration
}

// Turn is one prior message of a conversation passed as model context.
type Turn struct {
	Role    string // "user" or "assistant"
	Content string
}

// TextGenerator is an interface for generating text from a single prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (ContentResponse, error)
}

// ChatGenerator is an interface for multi-turn conversation with a system
// instruction and replayed history.
type ChatGenerator interface {
	GenerateChat(ctx context.Context, system string, history []Turn, message string) (ContentResponse, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
