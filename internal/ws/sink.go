package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MatchEvent is the wire shape of one job-match notification pushed to
// connected clients.
type MatchEvent struct {
	Type      string    `json:"type"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Category  string    `json:"category"`
	ActionURL string    `json:"action_url"`
	Timestamp string    `json:"timestamp"`
}

// Sink broadcasts match events over the hub. It satisfies the notifier's
// sink contract; delivery is best effort and a nil hub swallows events.
type Sink struct {
	hub *Hub
}

func NewSink(hub *Hub) *Sink {
	return &Sink{hub: hub}
}

func (s *Sink) Emit(_ context.Context, userID uuid.UUID, title, message, category, actionURL string) error {
	if s == nil || s.hub == nil {
		return nil
	}

	evt := MatchEvent{
		Type:      "notification",
		UserID:    userID,
		Title:     title,
		Message:   message,
		Category:  category,
		ActionURL: actionURL,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	s.hub.Broadcast(b)
	return nil
}
