package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"printhub-api/models"
)

// NotificationFeed owns the ephemeral dashboard notifications emitted by the
// order and inventory stores. Entries are created by the stores, marked read
// by the UI, and never deleted for the life of the process.
type NotificationFeed struct {
	mu    sync.Mutex
	items []models.Notification // newest first
	now   func() time.Time
}

func NewNotificationFeed() *NotificationFeed {
	return &NotificationFeed{now: time.Now}
}

// Add records a notification. forUserID of zero makes it staff-wide.
func (f *NotificationFeed) Add(kind models.NotificationType, message string, forUserID uint) models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := models.Notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Message:   message,
		ForUserID: forUserID,
		Timestamp: f.now(),
	}
	f.items = append([]models.Notification{n}, f.items...)
	return n
}

// All returns every notification, newest first.
func (f *NotificationFeed) All() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// ForUser returns staff-wide notifications plus those targeted at the user.
func (f *NotificationFeed) ForUser(userID uint) []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Notification
	for _, n := range f.items {
		if n.ForUserID == 0 || n.ForUserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// MarkRead flags a notification as read.
func (f *NotificationFeed) MarkRead(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}
