package contracts

import (
	"context"

	"mosefak-service/internal/app/models"
)

// NotificationService dispatches a push message and records it. Dispatch is
// best-effort: callers log the returned error and move on, a notification
// failure never rolls back a lifecycle transition.
type NotificationService interface {
	SendAndSave(ctx context.Context, recipientUserID int64, title, message string) error
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
}
