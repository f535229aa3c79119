package routes

import (
	"printhub-api/handlers"
	"printhub-api/middleware"
	"printhub-api/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Lifecycle + rate card info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
		public.GET("/pricing", h.GetPricing)
	}

	// Prometheus scrape endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/notifications", h.GetNotifications)
		auth.PUT("/notifications/:id/read", h.MarkNotificationRead)
	}

	// ── Student routes ─────────────────────────────────────────────
	student := r.Group("/api/student")
	student.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleStudent))
	{
		student.POST("/orders", h.CreateOrder)
		student.GET("/orders", h.GetMyOrders)
		student.GET("/orders/:id", h.GetOrderDetail)
		student.GET("/orders/:id/receipt", h.GetReceipt)
	}

	// ── Co-admin (shop staff) routes ───────────────────────────────
	coadmin := r.Group("/api/co-admin")
	coadmin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCoAdmin, models.RoleAdmin))
	{
		// Order processing
		coadmin.GET("/orders", h.GetOrders)
		coadmin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		coadmin.PUT("/orders/:id/deliver", h.DeliverOrder)

		// Inventory
		coadmin.GET("/inventory", h.GetInventory)
		coadmin.PUT("/inventory/adjust", h.AdjustInventory)
		coadmin.GET("/inventory/low-stock", h.GetLowStock)
		coadmin.POST("/inventory/stationery", h.AddStationery)
		coadmin.PUT("/inventory/stationery/:itemId", h.UpdateStationery)

		// Printer control
		coadmin.GET("/printer", h.GetPrinter)
		coadmin.PUT("/printer", h.SetPrinter)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", h.AdminGetAllOrders)
		admin.GET("/revenue", h.RevenueReport)
		admin.GET("/users", h.AdminGetAllUsers)
		admin.GET("/staff", h.ListStaff)
		admin.POST("/staff", h.CreateStaff)
		admin.PUT("/staff/:id/active", h.SetStaffActive)
	}
}
