package handlers

import (
	"printhub-api/store"
)

// Handler carries the long-lived stores into the route handlers. The stores
// are constructed once in main and injected here; handlers never reach for
// ambient state.
type Handler struct {
	Orders        *store.OrderStore
	Inventory     *store.InventoryStore
	Notifications *store.NotificationFeed
}

func New(orders *store.OrderStore, inventory *store.InventoryStore, feed *store.NotificationFeed) *Handler {
	return &Handler{
		Orders:        orders,
		Inventory:     inventory,
		Notifications: feed,
	}
}
