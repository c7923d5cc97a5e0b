package db

import (
	"context"
	"fmt"

	"pulse/storage"
	"pulse/storage/models"
)

func (d *DB) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	var targetType *string
	var targetID *int64
	if n.Target != nil {
		t := string(n.Target.Type)
		targetType = &t
		targetID = &n.Target.ID
	}

	err := d.pool.QueryRow(
		ctx,
		`INSERT INTO notifications (recipient_id, actor_id, verb, target_type, target_id)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING id, unread, created_at`,
		n.RecipientID, n.ActorID, n.Verb, targetType, targetID,
	).Scan(&n.ID, &n.Unread, &n.CreatedAt)
	if err != nil {
		if isPgError(err, foreignKeyViolation) {
			return models.Notification{}, fmt.Errorf("account %d: %w", n.RecipientID, storage.ErrNotFound)
		}
		return models.Notification{}, err
	}
	return n, nil
}

func (d *DB) GetNotification(ctx context.Context, id int64) (models.Notification, error) {
	row := d.pool.QueryRow(
		ctx,
		`SELECT id, recipient_id, actor_id, verb, target_type, target_id, unread, created_at
         FROM notifications WHERE id = $1`,
		id,
	)
	n, err := scanNotification(row)
	if err != nil {
		if noRows(err) {
			return models.Notification{}, fmt.Errorf("notification %d: %w", id, storage.ErrNotFound)
		}
		return models.Notification{}, err
	}
	return n, nil
}

func (d *DB) ListNotifications(ctx context.Context, recipientID int64) ([]models.Notification, error) {
	rows, err := d.pool.Query(
		ctx,
		`SELECT id, recipient_id, actor_id, verb, target_type, target_id, unread, created_at
         FROM notifications
         WHERE recipient_id = $1
         ORDER BY created_at DESC, id DESC`,
		recipientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (d *DB) MarkNotificationRead(ctx context.Context, id int64) error {
	_, err := d.pool.Exec(
		ctx,
		`UPDATE notifications SET unread = FALSE WHERE id = $1`,
		id,
	)
	return err
}

func (d *DB) CountUnreadNotifications(ctx context.Context, recipientID int64) (int64, error) {
	var count int64
	err := d.pool.QueryRow(
		ctx,
		`SELECT count(*) FROM notifications WHERE recipient_id = $1 AND unread`,
		recipientID,
	).Scan(&count)
	return count, err
}

type scannable interface {
	Scan(dest ...any) error
}

func scanNotification(row scannable) (models.Notification, error) {
	var n models.Notification
	var targetType *string
	var targetID *int64

	err := row.Scan(
		&n.ID, &n.RecipientID, &n.ActorID, &n.Verb,
		&targetType, &targetID, &n.Unread, &n.CreatedAt,
	)
	if err != nil {
		return models.Notification{}, err
	}
	if targetType != nil && targetID != nil {
		n.Target = &models.TargetRef{Type: models.TargetType(*targetType), ID: *targetID}
	}
	return n, nil
}
