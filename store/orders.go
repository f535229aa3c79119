package store

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"printhub-api/metrics"
	"printhub-api/models"
	"printhub-api/statemachine"
)

// OrderStore owns every order, its status and pickup code, plus the
// process-wide printer availability flag. It is built once at startup and
// injected into the handlers; a single mutex gives it the single-writer
// semantics the workflow expects while Gin serves requests concurrently.
//
// An inventory side effect of a transition (consumption on entering
// printing) is applied under the same critical section that flips the
// status, so no reader ever observes a printing order with stale stock.
type OrderStore struct {
	mu      sync.Mutex
	orders  []*models.Order // newest first
	byID    map[string]*models.Order
	printer models.PrinterStatus

	inventory *InventoryStore
	feed      *NotificationFeed
	pricing   Pricing

	now func() time.Time
	log *logrus.Entry
}

// NewOrderStore builds an order store wired to the inventory store it
// consumes from and the notification feed it emits into.
func NewOrderStore(inventory *InventoryStore, feed *NotificationFeed) *OrderStore {
	return &OrderStore{
		byID:      map[string]*models.Order{},
		printer:   models.PrinterOnline,
		inventory: inventory,
		feed:      feed,
		pricing:   DefaultPricing(),
		now:       time.Now,
		log:       logrus.WithField("component", "orders"),
	}
}

// Pricing returns the rate card orders are costed with.
func (s *OrderStore) Pricing() Pricing {
	return s.pricing
}

// CreateOrder validates and registers a new print job. The printer being
// offline is a hard block; busy is only a soft warning the handler surfaces.
// Cost is fixed at creation from the rate card.
func (s *OrderStore) CreateOrder(userID uint, files []models.PrintFile, opts models.PrintOptions, paymentMethod string, paymentDetails *models.PaymentDetails) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(files) == 0 {
		return models.Order{}, ErrNoFiles
	}
	if opts.Copies < 1 {
		return models.Order{}, fmt.Errorf("%w: copies must be at least 1", ErrInvalidOptions)
	}
	if opts.PrintType != models.PrintBlackAndWhite && opts.PrintType != models.PrintColor {
		return models.Order{}, fmt.Errorf("%w: print type must be bw or color", ErrInvalidOptions)
	}
	if opts.Sided != models.SingleSided && opts.Sided != models.DoubleSided {
		return models.Order{}, fmt.Errorf("%w: sided must be single or double", ErrInvalidOptions)
	}
	switch opts.PaperSize {
	case "A4", "A3", "Letter", "Legal":
	default:
		return models.Order{}, fmt.Errorf("%w: unsupported paper size %q", ErrInvalidOptions, opts.PaperSize)
	}
	if s.printer == models.PrinterOffline {
		return models.Order{}, ErrPrinterUnavailable
	}

	now := s.now()
	order := &models.Order{
		ID:             s.newOrderIDLocked(),
		UserID:         userID,
		Files:          append([]models.PrintFile(nil), files...),
		Options:        opts,
		Status:         models.StatusPending,
		Cost:           s.pricing.Cost(files, opts),
		PaymentMethod:  paymentMethod,
		PaymentDetails: paymentDetails,
		StatusHistory: []models.StatusEvent{{
			ToStatus:  models.StatusPending,
			ChangedBy: userID,
			Note:      "Order placed",
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.orders = append([]*models.Order{order}, s.orders...)
	s.byID[order.ID] = order

	s.feed.Add(models.NotifyNewOrder,
		fmt.Sprintf("New order %s received (%d file(s), %s)", order.ID, len(order.Files), statemachine.LabelFor(order.Status)), 0)
	metrics.OrdersCreated.Inc()

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"user_id":  userID,
		"cost":     order.Cost,
	}).Info("order created")

	return *order, nil
}

// UpdateOrderStatus moves an order one step along the lifecycle. Entering
// printing requires the printer not to be offline and deducts consumables;
// the first entry into completed mints the pickup OTP. Delivery is not
// reachable here: it goes through VerifyOTPAndAdvance.
func (s *OrderStore) UpdateOrderStatus(orderID string, target models.OrderStatus, changedBy uint, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.byID[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if target == models.StatusDelivered {
		metrics.RejectedTransitions.Inc()
		return fmt.Errorf("%w: delivery requires OTP verification", ErrIllegalTransition)
	}
	if err := statemachine.CanTransition(order.Status, target); err != nil {
		metrics.RejectedTransitions.Inc()
		return fmt.Errorf("%w: %v", ErrIllegalTransition, err)
	}

	if target == models.StatusPrinting {
		if s.printer == models.PrinterOffline {
			return ErrPrinterUnavailable
		}
		// Deduct stock before the new status becomes observable.
		s.inventory.ConsumeForJob(order)
	}

	if target == models.StatusCompleted && order.OTP == "" {
		order.OTP = newOTP()
		s.log.WithFields(logrus.Fields{
			"order_id": order.ID,
			"otp":      order.OTP,
		}).Info("pickup OTP issued")
	}

	s.commitTransitionLocked(order, target, changedBy, note)
	return nil
}

// VerifyOTPAndAdvance checks the supplied pickup code against the order's
// OTP and, on an exact match, delivers the order. This is the only way an
// order reaches the delivered state.
func (s *OrderStore) VerifyOTPAndAdvance(orderID, suppliedOTP string, changedBy uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.byID[orderID]
	if !ok {
		return ErrOrderNotFound
	}
	if order.Status != models.StatusCompleted {
		metrics.RejectedTransitions.Inc()
		return fmt.Errorf("%w: order %s is %s, OTP verification applies to completed orders",
			ErrIllegalTransition, orderID, order.Status)
	}
	if suppliedOTP != order.OTP {
		return ErrInvalidOtp
	}

	s.commitTransitionLocked(order, models.StatusDelivered, changedBy, "OTP verified at pickup")
	return nil
}

func (s *OrderStore) commitTransitionLocked(order *models.Order, target models.OrderStatus, changedBy uint, note string) {
	from := order.Status
	order.Status = target
	order.UpdatedAt = s.now()
	order.StatusHistory = append(order.StatusHistory, models.StatusEvent{
		FromStatus: from,
		ToStatus:   target,
		ChangedBy:  changedBy,
		Note:       note,
		CreatedAt:  order.UpdatedAt,
	})

	s.feed.Add(models.NotifyStatusChange,
		fmt.Sprintf("Order %s is now %s", order.ID, statemachine.LabelFor(target)), order.UserID)
	metrics.StatusTransitions.WithLabelValues(string(target)).Inc()

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"from":     from,
		"to":       target,
	}).Info("order status updated")
}

// GetOrderByID returns a copy of one order.
func (s *OrderStore) GetOrderByID(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.byID[orderID]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return *order, nil
}

// GetUserOrders returns all orders belonging to a user, most recent first.
func (s *OrderStore) GetUserOrders(userID uint) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out
}

// GetOrdersByStatus filters orders by status; "all" passes everything
// through unfiltered, most recent first.
func (s *OrderStore) GetOrdersByStatus(status string) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Order
	for _, order := range s.orders {
		if status == "all" || status == "" || string(order.Status) == status {
			out = append(out, *order)
		}
	}
	return out
}

// AllOrders returns every order, most recent first.
func (s *OrderStore) AllOrders() []models.Order {
	return s.GetOrdersByStatus("all")
}

// GenerateReceipt projects an order into its billing view. Nil when the
// order does not exist; no mutation in either case.
func (s *OrderStore) GenerateReceipt(orderID string) *models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.byID[orderID]
	if !ok {
		return nil
	}

	lines := make([]models.ReceiptLine, 0, len(order.Files))
	for _, f := range order.Files {
		lines = append(lines, models.ReceiptLine{
			FileName: f.Name,
			Pages:    f.Pages,
			Copies:   order.Options.Copies,
		})
	}
	return &models.Receipt{
		ReceiptID:     "RCPT-" + order.ID,
		OrderID:       order.ID,
		Date:          order.CreatedAt,
		Amount:        order.Cost,
		PaymentMethod: order.PaymentMethod,
		Lines:         lines,
	}
}

// PrinterStatus returns the current printer availability flag.
func (s *OrderStore) PrinterStatus() models.PrinterStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.printer
}

// SetPrinterStatus flips the printer flag. Only online, busy and offline
// are accepted.
func (s *OrderStore) SetPrinterStatus(status models.PrinterStatus) error {
	if !models.ValidPrinterStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidPrinterStatus, status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.printer = status
	s.log.WithField("status", status).Info("printer status changed")
	return nil
}

// newOrderIDLocked generates a fresh ORD-XXXX identifier, re-rolling on the
// rare collision with a live order.
func (s *OrderStore) newOrderIDLocked() string {
	for {
		id := fmt.Sprintf("ORD-%04d", 1000+rand.Intn(9000))
		if _, exists := s.byID[id]; !exists {
			return id
		}
	}
}

// newOTP mints a 4-digit pickup code. It is a pickup convenience, not a
// security token; collisions across orders are acceptable.
func newOTP() string {
	return fmt.Sprintf("%04d", 1000+rand.Intn(9000))
}
