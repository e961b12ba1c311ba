package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"svoji/internal/llm"
)

// ExecutionMetric records metadata for a single model call.
type ExecutionMetric struct {
	AgentName        string    `db:"agent_name"`
	Model            string    `db:"model"`
	PromptTokens     int       `db:"prompt_tokens"`
	CompletionTokens int       `db:"completion_tokens"`
	LatencyMS        int64     `db:"latency_ms"`
	Timestamp        time.Time `db:"timestamp"`
}

// Store handles persistence of model-call metrics to SQLite.
type Store struct {
	db *sqlx.DB
}

// NewStore initializes the Store with an existing database connection.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// Record saves a metric to the database.
func (s *Store) Record(ctx context.Context, m ExecutionMetric) error {
	ts := m.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_metrics (agent_name, model, prompt_tokens, completion_tokens, latency_ms, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.AgentName, m.Model, m.PromptTokens, m.CompletionTokens, m.LatencyMS, ts)
	if err != nil {
		return fmt.Errorf("failed to insert llm metric: %w", err)
	}
	return nil
}

// RecordResponse is a convenience wrapper recording a ContentResponse for an
// agent.
func (s *Store) RecordResponse(ctx context.Context, agentName string, resp llm.ContentResponse) error {
	return s.Record(ctx, ExecutionMetric{
		AgentName:        agentName,
		Model:            resp.Usage.Model,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		LatencyMS:        resp.Latency.Milliseconds(),
	})
}
