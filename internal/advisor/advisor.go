package advisor

import (
	"context"
	"fmt"
	"time"

	"svoji/internal/chat"
	"svoji/internal/couple"
	"svoji/internal/llm"
	"svoji/internal/metrics"
)

// historyLimit caps how many prior turns are replayed into the model.
const historyLimit = 30

// Advisor answers planning questions for a couple, keeping the conversation
// in the chat store and recording model usage.
type Advisor struct {
	chatGen llm.ChatGenerator
	chats   *chat.Repository
	metrics *metrics.Store
}

// NewAdvisor creates a new Advisor instance.
func NewAdvisor(chatGen llm.ChatGenerator, chats *chat.Repository, metricsStore *metrics.Store) *Advisor {
	return &Advisor{
		chatGen: chatGen,
		chats:   chats,
		metrics: metricsStore,
	}
}

// Ask sends a user message to the model with the couple's profile as context,
// persists both turns, and returns the assistant's reply.
func (a *Advisor) Ask(ctx context.Context, c *couple.Couple, message string, now time.Time) (*chat.Message, error) {
	if c.WeddingDate == nil || c.WeddingSize == nil {
		return nil, fmt.Errorf("couple profile incomplete: wedding date and size required")
	}

	history, err := a.chats.History(ctx, c.ID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	turns := make([]llm.Turn, 0, len(history))
	for _, m := range history {
		turns = append(turns, llm.Turn{Role: m.Role, Content: m.Content})
	}

	resp, err := a.chatGen.GenerateChat(ctx, buildSystemPrompt(c, now), turns, message)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advisor reply: %w", err)
	}

	// Metrics are best-effort; a failed insert must not drop the reply.
	if a.metrics != nil {
		_ = a.metrics.RecordResponse(ctx, "advisor", resp)
	}

	if _, err := a.chats.Append(ctx, c.ID, chat.RoleUser, message, now); err != nil {
		return nil, fmt.Errorf("failed to persist user turn: %w", err)
	}
	reply, err := a.chats.Append(ctx, c.ID, chat.RoleAssistant, resp.Content, now)
	if err != nil {
		return nil, fmt.Errorf("failed to persist assistant turn: %w", err)
	}

	return reply, nil
}
