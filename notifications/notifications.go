// Package notifications materializes activity records from social signals
// and exposes them per recipient.
package notifications

import (
	"context"
	"fmt"

	"pulse/cache"
	"pulse/monitoring"
	"pulse/storage"
	"pulse/storage/models"
)

type Store interface {
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	GetNotification(ctx context.Context, id int64) (models.Notification, error)
	ListNotifications(ctx context.Context, recipientID int64) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64) error
	CountUnreadNotifications(ctx context.Context, recipientID int64) (int64, error)
}

type Service struct {
	store  Store
	unread *cache.UnreadCache // nil when redis is not configured
}

func NewService(store Store, unread *cache.UnreadCache) *Service {
	return &Service{
		store:  store,
		unread: unread,
	}
}

// Notify records a notification for the recipient. Self-notification is
// suppressed here, regardless of caller discipline; the suppression is
// silent because it is policy, not a failure.
func (s *Service) Notify(ctx context.Context, recipientID, actorID int64, verb string, target *models.TargetRef) error {
	if recipientID == actorID {
		return nil
	}

	_, err := s.store.CreateNotification(ctx, models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		Target:      target,
	})
	if err != nil {
		return err
	}

	monitoring.NotificationsTotal.WithLabelValues(verb).Inc()
	s.unread.Incr(ctx, recipientID)
	return nil
}

// List returns the recipient's notifications, newest first.
func (s *Service) List(ctx context.Context, recipientID int64) ([]models.Notification, error) {
	return s.store.ListNotifications(ctx, recipientID)
}

// MarkRead flips a notification to read. Only the recipient may do so.
// Marking an already-read notification again is a no-op.
func (s *Service) MarkRead(ctx context.Context, actorID, notificationID int64) error {
	n, err := s.store.GetNotification(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != actorID {
		return fmt.Errorf("notification %d: %w", notificationID, storage.ErrPermission)
	}
	if !n.Unread {
		return nil
	}
	if err := s.store.MarkNotificationRead(ctx, notificationID); err != nil {
		return err
	}
	s.unread.Decr(ctx, n.RecipientID)
	return nil
}

// UnreadCount serves from the counter cache when available and falls back to
// the store, repairing the cache on the way out.
func (s *Service) UnreadCount(ctx context.Context, recipientID int64) (int64, error) {
	if count, ok := s.unread.Get(ctx, recipientID); ok {
		return count, nil
	}
	count, err := s.store.CountUnreadNotifications(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	s.unread.Set(ctx, recipientID, count)
	return count, nil
}
