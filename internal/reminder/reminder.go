package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"svoji/internal/checklist"
	"svoji/internal/couple"
)

// digestWindow is how far ahead the digest looks for due tasks.
const digestWindow = 7 * 24 * time.Hour

// Sender delivers a digest message to a chat. Implemented by the Telegram
// notifier; mocked in tests.
type Sender interface {
	Send(chatID int64, text string) error
}

// Poller periodically sends each opted-in couple a digest of checklist tasks
// due within the next week.
type Poller struct {
	couples  *couple.Repository
	items    *checklist.Repository
	sender   Sender
	interval time.Duration
	log      zerolog.Logger
}

// NewPoller creates a new reminder poller.
func NewPoller(couples *couple.Repository, items *checklist.Repository, sender Sender, interval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		couples:  couples,
		items:    items,
		sender:   sender,
		interval: interval,
		log:      log,
	}
}

// Run loops until the context is cancelled, sending one round of digests per
// interval. The first round runs immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.RunOnce(ctx, time.Now()); err != nil {
			p.log.Error().Err(err).Msg("reminder round failed")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce sends a single round of digests.
func (p *Poller) RunOnce(ctx context.Context, now time.Time) error {
	couples, err := p.couples.ListWithTelegram(ctx)
	if err != nil {
		return fmt.Errorf("failed to list couples: %w", err)
	}

	for _, c := range couples {
		items, err := p.items.DueWithin(ctx, c.ID, now, digestWindow)
		if err != nil {
			p.log.Error().Err(err).Str("couple_id", c.ID).Msg("failed to load due items")
			continue
		}
		if len(items) == 0 {
			continue
		}

		if err := p.sender.Send(*c.TelegramChatID, BuildDigest(items)); err != nil {
			p.log.Error().Err(err).Str("couple_id", c.ID).Msg("failed to send digest")
		}
	}

	return nil
}

// BuildDigest formats due checklist items as a Czech Telegram message.
func BuildDigest(items []checklist.Item) string {
	var b strings.Builder
	b.WriteString("Úkoly na tento týden:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "• %s (%s, do %s)\n",
			it.Title,
			checklist.CategoryLabels[it.Category],
			it.DueDate.Format("2. 1."))
	}
	return strings.TrimRight(b.String(), "\n")
}
