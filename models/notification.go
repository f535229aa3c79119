package models

import "time"

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotifyNewOrder       NotificationType = "newOrder"
	NotifyStatusChange   NotificationType = "statusChange"
	NotifyInventoryAlert NotificationType = "inventoryAlert"
)

// Notification is an ephemeral in-process event surfaced to the dashboard.
// ForUserID of zero means the notification is staff-wide rather than
// targeted at a single user.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	ForUserID uint             `json:"for_user_id,omitempty"`
	Read      bool             `json:"read"`
	Timestamp time.Time        `json:"timestamp"`
}
