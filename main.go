package main

import (
	"net/http"
	"os"

	"printhub-api/config"
	"printhub-api/handlers"
	"printhub-api/models"
	"printhub-api/routes"
	"printhub-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Initialize user database
	config.InitDB()

	// Core stores: built once here, injected everywhere. Orders, inventory
	// and notifications live for the life of the process.
	feed := store.NewNotificationFeed()
	inventory := store.NewInventoryStore(feed)
	orders := store.NewOrderStore(inventory, feed)
	seedDemoOrders(orders)

	h := handlers.New(orders, inventory, feed)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "PrintHub Order Management API",
			"version": "1.0.0",
			"printer": orders.PrinterStatus(),
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the PrintHub Order Management API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"admin", "co-admin", "student"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}

// seedDemoOrders places the sample orders the demo dashboard expects: one
// pending monochrome job and one approved color job for the demo student.
func seedDemoOrders(orders *store.OrderStore) {
	var studentID uint
	var student models.User
	if err := config.DB.Where("email = ?", "student@printhub.com").First(&student).Error; err != nil {
		return
	}
	studentID = student.ID

	_, err := orders.CreateOrder(studentID,
		[]models.PrintFile{{Name: "assignment.pdf", Size: "2.4 MB", Pages: 12}},
		models.PrintOptions{
			Copies:    2,
			PageRange: "all",
			PrintType: models.PrintBlackAndWhite,
			Sided:     models.DoubleSided,
			PaperSize: "A4",
			Notes:     "Please staple all copies",
		}, "cash", nil)
	if err != nil {
		logrus.WithError(err).Warn("failed to seed demo order")
	}

	approved, err := orders.CreateOrder(studentID,
		[]models.PrintFile{{Name: "presentation.pdf", Size: "5.7 MB", Pages: 20}},
		models.PrintOptions{
			Copies:    3,
			PageRange: "all",
			PrintType: models.PrintColor,
			Sided:     models.SingleSided,
			PaperSize: "A4",
			Notes:     "Need urgently",
		}, "upi", nil)
	if err != nil {
		logrus.WithError(err).Warn("failed to seed demo order")
		return
	}
	if err := orders.UpdateOrderStatus(approved.ID, models.StatusApproved, 0, "Approved at startup seed"); err != nil {
		logrus.WithError(err).Warn("failed to advance seeded order")
	}
}
