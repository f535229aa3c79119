package handlers

import (
	"net/http"

	"printhub-api/models"
	"printhub-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the full order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	labels := map[string]string{}
	for _, s := range []models.OrderStatus{
		models.StatusPending, models.StatusApproved, models.StatusPrinting,
		models.StatusReady, models.StatusCompleted, models.StatusDelivered,
		models.StatusRejected,
	} {
		labels[string(s)] = statemachine.LabelFor(s)
	}

	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.AllTransitions(),
		"terminal_states": []string{string(models.StatusDelivered), string(models.StatusRejected)},
		"labels":          labels,
		"description":     "Print order lifecycle state machine; delivery requires OTP verification",
	})
}

// GetPricing returns the rate card used to cost orders.
func (h *Handler) GetPricing(c *gin.Context) {
	p := h.Orders.Pricing()
	c.JSON(http.StatusOK, gin.H{
		"rate_bw_per_page":      p.RateBW,
		"rate_color_per_page":   p.RateColor,
		"a3_multiplier":         p.A3Multiplier,
		"double_sided_discount": p.DoubleSidedOff,
		"currency":              "INR",
	})
}
