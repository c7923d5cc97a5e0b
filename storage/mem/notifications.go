package mem

import (
	"context"
	"fmt"
	"sort"

	"pulse/storage"
	"pulse/storage/models"
)

func (s *Store) CreateNotification(_ context.Context, n models.Notification) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getAccount(n.RecipientID); err != nil {
		return models.Notification{}, err
	}

	s.nextNotifID++
	n.ID = s.nextNotifID
	n.Unread = true
	n.CreatedAt = now()
	if n.Target != nil {
		target := *n.Target
		n.Target = &target
	}
	s.notifs[n.ID] = n
	return n, nil
}

func (s *Store) GetNotification(_ context.Context, id int64) (models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifs[id]
	if !ok {
		return models.Notification{}, fmt.Errorf("notification %d: %w", id, storage.ErrNotFound)
	}
	return n, nil
}

func (s *Store) ListNotifications(_ context.Context, recipientID int64) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := make([]models.Notification, 0)
	for _, n := range s.notifs {
		if n.RecipientID == recipientID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		if !notifications[i].CreatedAt.Equal(notifications[j].CreatedAt) {
			return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
		}
		return notifications[i].ID > notifications[j].ID
	})
	return notifications, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifs[id]
	if !ok {
		return fmt.Errorf("notification %d: %w", id, storage.ErrNotFound)
	}
	n.Unread = false
	s.notifs[id] = n
	return nil
}

func (s *Store) CountUnreadNotifications(_ context.Context, recipientID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, n := range s.notifs {
		if n.RecipientID == recipientID && n.Unread {
			count++
		}
	}
	return count, nil
}
