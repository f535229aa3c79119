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

type CreateOrderRequest struct {
	Files []struct {
		Name  string `json:"name" binding:"required"`
		Size  string `json:"size"`
		Pages int    `json:"pages" binding:"required,min=1"`
	} `json:"files" binding:"required,min=1"`
	Options struct {
		Copies    int    `json:"copies" binding:"required,min=1"`
		PageRange string `json:"page_range"`
		PrintType string `json:"print_type" binding:"required"`
		Sided     string `json:"sided" binding:"required"`
		PaperSize string `json:"paper_size" binding:"required"`
		Notes     string `json:"notes"`
	} `json:"options" binding:"required"`
	PaymentMethod  string                 `json:"payment_method"`
	PaymentDetails *models.PaymentDetails `json:"payment_details"`
}

// CreateOrder submits a new print job (student only). The printer being
// offline blocks creation outright; busy only adds a warning to the reply.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := make([]models.PrintFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, models.PrintFile{Name: f.Name, Size: f.Size, Pages: f.Pages})
	}
	pageRange := req.Options.PageRange
	if pageRange == "" {
		pageRange = "all"
	}
	opts := models.PrintOptions{
		Copies:    req.Options.Copies,
		PageRange: pageRange,
		PrintType: models.PrintType(req.Options.PrintType),
		Sided:     models.Sided(req.Options.Sided),
		PaperSize: req.Options.PaperSize,
		Notes:     req.Options.Notes,
	}

	order, err := h.Orders.CreateOrder(userID, files, opts, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPrinterUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Printer is offline, orders cannot be placed right now"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	resp := gin.H{
		"message": "Order placed successfully",
		"order":   order,
	}
	if h.Orders.PrinterStatus() == models.PrinterBusy {
		resp["warning"] = "Printer is busy; your order may take longer than usual"
	}
	c.JSON(http.StatusCreated, resp)
}

// GetMyOrders returns all orders for the logged-in student, newest first.
func (h *Handler) GetMyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	orders := h.Orders.GetUserOrders(userID)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order with its status history and the
// label/next-step info the tracker view renders.
func (h *Handler) GetOrderDetail(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := h.Orders.GetOrderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":        order,
		"status_label": statemachine.LabelFor(order.Status),
		"next_status":  statemachine.NextStatus(order.Status),
	})
}

// GetReceipt returns the billing view of one of the student's orders.
func (h *Handler) GetReceipt(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := h.Orders.GetOrderByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}

	receipt := h.Orders.GenerateReceipt(order.ID)
	if receipt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}
