package impl

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

const DefaultNotificationLimit = 100

func (s *AppService) Notifications(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 || limit > DefaultNotificationLimit {
		limit = DefaultNotificationLimit
	}
	return s.DB.GetNotifications(ctx, recipientID, limit)
}

func (s *AppService) MarkNotificationRead(ctx context.Context, recipientID, id string) error {
	return s.DB.MarkNotificationRead(ctx, id, recipientID)
}

func (s *AppService) MarkAllNotificationsRead(ctx context.Context, recipientID string) error {
	return s.DB.MarkAllNotificationsRead(ctx, recipientID)
}

func (s *AppService) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return s.DB.CountUnread(ctx, recipientID)
}
