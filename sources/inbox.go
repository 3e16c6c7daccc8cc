package sources

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/kova98/redd/data"
	"github.com/kova98/redd/enums"
	"github.com/kova98/redd/models"
)

// defaultSeenLimit caps the in-memory dedupe set. The archive ignores
// duplicate fullnames, so clearing the set only costs a redundant insert.
const defaultSeenLimit = 10000

type inboxClient interface {
	BatchMyMessages(ctx context.Context, categories []enums.MessageCategory, mark bool) ([]*models.Listing, error)
	ReadAllMessages(ctx context.Context) error
}

type messageStore interface {
	SaveMessages(messages []data.Message) error
}

type languageDetector interface {
	Detect(text string) string
}

// InboxPoller archives new inbox items on a fixed interval.
type InboxPoller struct {
	logger       *slog.Logger
	client       inboxClient
	store        messageStore
	languages    languageDetector
	categories   []enums.MessageCategory
	markRead     bool
	pollInterval time.Duration
	seen         map[string]bool
	seenLimit    int
	now          func() time.Time
}

func NewInboxPoller(
	logger *slog.Logger,
	client inboxClient,
	store messageStore,
	languages languageDetector,
	categories []enums.MessageCategory,
	markRead bool,
	pollInterval time.Duration,
) *InboxPoller {
	return &InboxPoller{
		logger:       logger,
		client:       client,
		store:        store,
		languages:    languages,
		categories:   categories,
		markRead:     markRead,
		pollInterval: pollInterval,
		seen:         make(map[string]bool),
		seenLimit:    defaultSeenLimit,
		now:          time.Now,
	}
}

func (p *InboxPoller) StartPolling(ctx context.Context) {
	p.logger.Info("starting inbox polling", "categories", p.categories, "interval", p.pollInterval.Seconds())

	p.poll(ctx)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("stopping inbox polling")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *InboxPoller) poll(ctx context.Context) {
	stored, err := p.pollOnce(ctx)
	if err != nil {
		p.logger.Error("poll inbox", "error", err)
		return
	}
	p.logger.Debug("processed inbox", "new_messages", stored, "total_seen", len(p.seen))
}

// pollOnce returns the number of newly stored messages.
func (p *InboxPoller) pollOnce(ctx context.Context) (int, error) {
	listings, err := p.client.BatchMyMessages(ctx, p.categories, p.markRead)
	if err != nil {
		return 0, errors.Wrap(err, "fetch messages")
	}

	fetchedAt := p.now()
	messages := make([]data.Message, 0, 32)
	batch := make(map[string]bool)
	for i, listing := range listings {
		for _, thing := range listing.Children {
			msg, ok := data.NewMessage(thing, p.categories[i], fetchedAt)
			if !ok {
				p.logger.Debug("skipping inbox item", "kind", thing.Kind())
				continue
			}
			if p.seen[msg.Fullname] || batch[msg.Fullname] {
				continue
			}
			batch[msg.Fullname] = true
			msg.Language = p.languages.Detect(msg.Body)
			messages = append(messages, msg)
		}
	}

	if err := p.store.SaveMessages(messages); err != nil {
		return 0, errors.Wrap(err, "store messages")
	}
	if len(p.seen)+len(messages) > p.seenLimit {
		p.logger.Debug("resetting seen messages", "size", len(p.seen))
		clear(p.seen)
	}
	for _, msg := range messages {
		p.seen[msg.Fullname] = true
	}

	if p.markRead && len(messages) > 0 {
		if err := p.client.ReadAllMessages(ctx); err != nil {
			return len(messages), errors.Wrap(err, "mark messages read")
		}
	}

	return len(messages), nil
}
