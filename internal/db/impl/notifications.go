package impl

import (
	"context"

	"github.com/iamanderson-dev/thoughts-app/internal/domain"
)

func (d *dbImpl) InsertNotification(ctx context.Context, n domain.Notification) error {
	_, err := d.db.ExecContext(ctx,
		"INSERT INTO notifications(id, recipient_id, sender_id, kind, subject_ref, is_read, created_at) VALUES (?,?,?,?,?,?,?)",
		n.ID, n.RecipientID, n.SenderID, n.Kind, n.SubjectRef, n.IsRead, n.Created)
	return d.HandleError(err)
}

func (d *dbImpl) GetNotifications(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, recipient_id, sender_id, kind, subject_ref, is_read, created_at
		FROM notifications WHERE recipient_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		recipientID, limit)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err = rows.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.Kind, &n.SubjectRef, &n.IsRead, &n.Created)
		if err != nil {
			return nil, d.HandleError(err)
		}
		notifications = append(notifications, n)
	}
	return notifications, d.HandleError(rows.Err())
}

func (d *dbImpl) MarkNotificationRead(ctx context.Context, id, recipientID string) error {
	res, err := d.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE id = ? AND recipient_id = ?",
		id, recipientID)
	if err != nil {
		return d.HandleError(err)
	}
	return d.affected(res)
}

func (d *dbImpl) MarkAllNotificationsRead(ctx context.Context, recipientID string) error {
	_, err := d.db.ExecContext(ctx,
		"UPDATE notifications SET is_read = TRUE WHERE recipient_id = ?", recipientID)
	return d.HandleError(err)
}

func (d *dbImpl) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	row := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notifications WHERE recipient_id = ? AND NOT is_read", recipientID)
	var n int64
	err := row.Scan(&n)
	return n, d.HandleError(err)
}
