package handlers

import (
	"net/http"
	"strconv"
	"time"

	"printhub-api/config"
	"printhub-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminGetAllOrders returns every order with status summary and revenue
// total, optionally filtered by status or user.
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		status = "all"
	}
	orders := h.Orders.GetOrdersByStatus(status)

	if userID := c.Query("user_id"); userID != "" {
		id, err := strconv.ParseUint(userID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id"})
			return
		}
		filtered := orders[:0]
		for _, o := range orders {
			if o.UserID == uint(id) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		totalRevenue += o.Cost
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

// RevenueReport aggregates revenue over a date range: today, week, month,
// year, or custom (?start=YYYY-MM-DD&end=YYYY-MM-DD). Includes a breakdown
// by payment method; orders without one count under "other".
func (h *Handler) RevenueReport(c *gin.Context) {
	now := time.Now()
	var start, end time.Time
	end = now

	switch c.DefaultQuery("range", "month") {
	case "today":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = now.AddDate(0, -1, 0)
	case "year":
		start = now.AddDate(-1, 0, 0)
	case "custom":
		var err1, err2 error
		start, err1 = time.Parse("2006-01-02", c.Query("start"))
		end, err2 = time.Parse("2006-01-02", c.Query("end"))
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "custom range requires start and end as YYYY-MM-DD"})
			return
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "range must be today, week, month, year or custom"})
		return
	}

	var total float64
	count := 0
	byMethod := map[string]float64{}
	byStatus := map[string]int{}
	for _, o := range h.Orders.AllOrders() {
		if o.CreatedAt.Before(start) || o.CreatedAt.After(end) {
			continue
		}
		count++
		total += o.Cost
		method := o.PaymentMethod
		if method == "" {
			method = "other"
		}
		byMethod[method] += o.Cost
		byStatus[string(o.Status)]++
	}

	avg := 0.0
	if count > 0 {
		avg = total / float64(count)
	}

	c.JSON(http.StatusOK, gin.H{
		"start":             start,
		"end":               end,
		"total_revenue":     total,
		"order_count":       count,
		"average_order":     avg,
		"by_payment_method": byMethod,
		"by_status":         byStatus,
	})
}

// AdminGetAllUsers returns all users, optionally filtered by role.
func (h *Handler) AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	query := config.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	query.Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// ListStaff returns every co-admin account.
func (h *Handler) ListStaff(c *gin.Context) {
	var staff []models.User
	config.DB.Where("role = ?", models.RoleCoAdmin).Find(&staff)
	c.JSON(http.StatusOK, gin.H{"count": len(staff), "staff": staff})
}

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Shifts   string `json:"shifts"`
}

// CreateStaff provisions a new co-admin account.
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	staff := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleCoAdmin,
		Phone:        req.Phone,
		Active:       true,
		JoiningDate:  time.Now().Format("2006-01-02"),
		Shifts:       req.Shifts,
	}
	if err := config.DB.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create staff account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Staff account created", "staff": staff})
}

type SetStaffActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetStaffActive activates or deactivates a co-admin account. Deactivated
// accounts cannot log in.
func (h *Handler) SetStaffActive(c *gin.Context) {
	var staff models.User
	if err := config.DB.Where("role = ?", models.RoleCoAdmin).First(&staff, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}

	var req SetStaffActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config.DB.Model(&staff).Update("active", *req.Active)
	c.JSON(http.StatusOK, gin.H{"message": "Staff account updated", "staff": staff})
}
