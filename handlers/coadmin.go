package handlers

import (
	"errors"
	"net/http"

	"printhub-api/middleware"
	"printhub-api/models"
	"printhub-api/statemachine"
	"printhub-api/store"

	"github.com/gin-gonic/gin"
)

// GetOrders returns the order queue for shop staff. By default terminal
// orders are hidden; ?status= filters to one status and ?all=true shows
// everything. A per-status summary feeds the dashboard cards.
func (h *Handler) GetOrders(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		status = "all"
	}
	orders := h.Orders.GetOrdersByStatus(status)

	if status == "all" && c.Query("all") != "true" {
		active := orders[:0]
		for _, o := range orders {
			if !statemachine.IsTerminal(o.Status) {
				active = append(active, o)
			}
		}
		orders = active
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Note   string             `json:"note"`
}

// UpdateOrderStatus advances (or rejects) an order through the lifecycle.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	staffID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Orders.GetOrderByID(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := h.Orders.UpdateOrderStatus(orderID, req.Status, staffID, req.Note); err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, store.ErrPrinterUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Printer is offline, cannot start printing"})
		case errors.Is(err, store.ErrIllegalTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":             "Invalid state transition",
				"current_status":    order.Status,
				"requested":         req.Status,
				"reason":            err.Error(),
				"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        orderID,
		"previous_status": order.Status,
		"current_status":  req.Status,
	})
}

type DeliverOrderRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// DeliverOrder verifies the pickup OTP and hands the order over. This is the
// only path into the delivered state.
func (h *Handler) DeliverOrder(c *gin.Context) {
	staffID := middleware.GetUserID(c)
	orderID := c.Param("id")

	var req DeliverOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Orders.VerifyOTPAndAdvance(orderID, req.OTP, staffID); err != nil {
		switch {
		case errors.Is(err, store.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, store.ErrInvalidOtp):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OTP. Please try again."})
		case errors.Is(err, store.ErrIllegalTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "OTP verified, order delivered",
		"order_id": orderID,
	})
}
