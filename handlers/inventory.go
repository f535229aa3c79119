package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"printhub-api/models"
	"printhub-api/store"

	"github.com/gin-gonic/gin"
)

// GetInventory returns the full stock picture: ink, paper and stationery.
func (h *Handler) GetInventory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ink":        h.Inventory.Ink(),
		"paper":      h.Inventory.Paper(),
		"stationery": h.Inventory.Stationery(),
	})
}

type AdjustInventoryRequest struct {
	Category models.StockCategory `json:"category" binding:"required"`
	Key      string               `json:"key" binding:"required"`
	Delta    float64              `json:"delta" binding:"required"`
}

// AdjustInventory applies a bounded delta to one ink color or paper size.
// Out-of-range results clamp silently; only unknown keys fail.
func (h *Handler) AdjustInventory(c *gin.Context) {
	var req AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newValue, err := h.Inventory.Adjust(req.Category, req.Key, req.Delta)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":  req.Category,
		"key":       req.Key,
		"new_value": newValue,
	})
}

// GetLowStock returns every item below its restock threshold.
func (h *Handler) GetLowStock(c *gin.Context) {
	items := h.Inventory.LowStockItems()
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

type StationeryRequest struct {
	Name      string `json:"name" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0"`
	Threshold int    `json:"threshold" binding:"min=0"`
	Unit      string `json:"unit" binding:"required"`
}

// AddStationery registers a new supplementary stock item.
func (h *Handler) AddStationery(c *gin.Context) {
	var req StationeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := h.Inventory.AddStationeryItem(req.Name, req.Quantity, req.Threshold, req.Unit)
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

type UpdateStationeryRequest struct {
	Quantity  int  `json:"quantity" binding:"min=0"`
	Threshold *int `json:"threshold"` // omit to leave the threshold unchanged
}

// UpdateStationery restocks or re-thresholds an existing item.
func (h *Handler) UpdateStationery(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	var req UpdateStationeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	threshold := -1
	if req.Threshold != nil && *req.Threshold >= 0 {
		threshold = *req.Threshold
	}
	item, err := h.Inventory.UpdateStationeryItem(id, req.Quantity, threshold)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// GetPrinter returns the current printer availability flag.
func (h *Handler) GetPrinter(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"printer_status": h.Orders.PrinterStatus()})
}

type SetPrinterRequest struct {
	Status models.PrinterStatus `json:"status" binding:"required"`
}

// SetPrinter flips the printer between online, busy and offline.
func (h *Handler) SetPrinter(c *gin.Context) {
	var req SetPrinterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Orders.SetPrinterStatus(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Printer status must be online, busy or offline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"printer_status": req.Status})
}
