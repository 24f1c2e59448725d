package notification

import (
	"time"

	"github.com/google/uuid"
)

// CategoryJobMatch tags events produced by the match notifier.
const CategoryJobMatch = "job_match"

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Category  string
	ActionURL string
	IsRead    bool
	CreatedAt time.Time
}
