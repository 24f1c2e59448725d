package repository

import (
	"context"

	"github.com/Knocktern/Job-Matching-System/internal/database"
	"github.com/Knocktern/Job-Matching-System/internal/domain/notification"

	"github.com/google/uuid"
)

// PostgresNotificationRepository persists match events to the
// notifications table. Its Emit method satisfies the usecase layer's
// NotificationSink.
type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Emit(ctx context.Context, userID uuid.UUID, title, message, category, actionURL string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, user_id, title, message, category, action_url, is_read)
		 VALUES ($1, $2, $3, $4, $5, $6, FALSE)`,
		uuid.New(), userID, title, message, category, actionURL,
	)
	return err
}

func (r *PostgresNotificationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]notification.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.Query(ctx,
		`SELECT n.id, n.user_id, n.title, n.message, n.category,
		        COALESCE(n.action_url, ''), n.is_read, n.created_at
		 FROM notifications n
		 WHERE n.user_id = $1
		 ORDER BY n.created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Category,
			&n.ActionURL, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
