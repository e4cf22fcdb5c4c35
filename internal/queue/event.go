// Package queue defines message payloads exchanged over the message broker.
package queue

import (
	"time"

	"github.com/google/uuid"
)

// Activity event types published to the faq.activity queue.
const (
	TypeBookmarkAdded   = "bookmark.added"
	TypeBookmarkRemoved = "bookmark.removed"
	TypeFaqCreated      = "faq.created"
)

// ActivityEvent is published whenever a user bookmarks or unbookmarks
// an entry or an admin creates one. It carries enough information for
// downstream consumers to log or trigger notifications without
// querying the primary database.
type ActivityEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	UserID     uint64 `json:"user_id"`
	FaqID      uint64 `json:"faq_id"`
	Title      string `json:"title,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// NewActivityEvent stamps a fresh event with a unique id and the
// current UTC time.
func NewActivityEvent(eventType string, userID, faqID uint64, title string) ActivityEvent {
	return ActivityEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		FaqID:      faqID,
		Title:      title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
