package store

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"printhub-api/metrics"
	"printhub-api/models"
)

// StockLimits bounds every inventory quantity. All mutations clamp into
// [0, max]; going out of range is silent, not an error.
type StockLimits struct {
	InkMax   float64
	PaperMax map[string]int
}

// ConsumptionRates drives the derived ink/paper consumption when a job
// starts printing. Rates are ink percent per page.
type ConsumptionRates struct {
	BWPerPage          float64 // black ink, monochrome jobs
	ColorPerPage       float64 // black ink, color jobs
	ColorChannelFactor float64 // cyan/magenta/yellow relative to ColorPerPage
}

// Thresholds define when stock counts as low.
type Thresholds struct {
	InkLow   float64 // percent
	PaperLow int     // sheets
}

func DefaultStockLimits() StockLimits {
	return StockLimits{
		InkMax: 100,
		PaperMax: map[string]int{
			"A4":     500,
			"A3":     100,
			"Letter": 250,
			"Legal":  250,
		},
	}
}

func DefaultConsumptionRates() ConsumptionRates {
	return ConsumptionRates{
		BWPerPage:          0.1,
		ColorPerPage:       0.2,
		ColorChannelFactor: 0.7,
	}
}

func DefaultThresholds() Thresholds {
	return Thresholds{InkLow: 25, PaperLow: 100}
}

// InventoryStore owns the shop's consumable stock: ink levels, paper counts
// and supplementary stationery items. It is constructed once at startup and
// injected wherever it is needed; a mutex makes its operations safe under
// Gin's concurrent request handling.
//
// Ink is held as a float percentage so fractional per-page consumption stays
// exact; paper is whole sheets.
type InventoryStore struct {
	mu         sync.Mutex
	ink        map[string]float64
	paper      map[string]int
	stationery []models.StationeryItem
	nextItemID int

	limits     StockLimits
	rates      ConsumptionRates
	thresholds Thresholds

	feed    *NotificationFeed
	alerted map[string]bool // low-stock ids already announced

	log *logrus.Entry
}

// NewInventoryStore builds a store seeded with the shop's opening stock.
func NewInventoryStore(feed *NotificationFeed) *InventoryStore {
	s := &InventoryStore{
		ink: map[string]float64{
			"black":   70,
			"cyan":    85,
			"magenta": 90,
			"yellow":  80,
		},
		paper: map[string]int{
			"A4":     500,
			"A3":     100,
			"Letter": 250,
			"Legal":  250,
		},
		stationery: []models.StationeryItem{
			{ID: 1, Name: "Spiral Binding Materials", Quantity: 150, Threshold: 30, Unit: "sets", LastRestocked: restockDate()},
			{ID: 2, Name: "Staples", Quantity: 500, Threshold: 100, Unit: "boxes", LastRestocked: restockDate()},
			{ID: 3, Name: "Tape", Quantity: 15, Threshold: 5, Unit: "rolls", LastRestocked: restockDate()},
			{ID: 4, Name: "Lamination Sheets", Quantity: 200, Threshold: 50, Unit: "sheets", LastRestocked: restockDate()},
		},
		nextItemID: 5,
		limits:     DefaultStockLimits(),
		rates:      DefaultConsumptionRates(),
		thresholds: DefaultThresholds(),
		feed:       feed,
		alerted:    map[string]bool{},
		log:        logrus.WithField("component", "inventory"),
	}
	return s
}

func restockDate() string {
	return time.Now().Format("Jan 2, 2006")
}

// Ink returns a copy of the ink levels.
func (s *InventoryStore) Ink() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]float64, len(s.ink))
	for k, v := range s.ink {
		out[k] = v
	}
	return out
}

// Paper returns a copy of the paper stock.
func (s *InventoryStore) Paper() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.paper))
	for k, v := range s.paper {
		out[k] = v
	}
	return out
}

// Stationery returns a copy of the supplementary stock items.
func (s *InventoryStore) Stationery() []models.StationeryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StationeryItem, len(s.stationery))
	copy(out, s.stationery)
	return out
}

// Adjust applies a delta to one ink color or paper size and returns the new
// value. Results clamp into [0, max]; unknown keys are ErrNotFound.
func (s *InventoryStore) Adjust(category models.StockCategory, key string, delta float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var newValue float64
	switch category {
	case models.CategoryInk:
		level, ok := s.ink[key]
		if !ok {
			return 0, fmt.Errorf("%w: ink %q", ErrNotFound, key)
		}
		s.ink[key] = clampFloat(level+delta, s.limits.InkMax)
		newValue = s.ink[key]
	case models.CategoryPaper:
		count, ok := s.paper[key]
		if !ok {
			return 0, fmt.Errorf("%w: paper %q", ErrNotFound, key)
		}
		s.paper[key] = clampInt(count+int(delta), s.limits.PaperMax[key])
		newValue = float64(s.paper[key])
	default:
		return 0, fmt.Errorf("%w: category %q", ErrNotFound, category)
	}

	s.log.WithFields(logrus.Fields{
		"category": category,
		"key":      key,
		"delta":    delta,
		"value":    newValue,
	}).Debug("inventory adjusted")

	s.checkAlertsLocked()
	return newValue, nil
}

// ConsumeForJob deducts the ink and paper a print job uses. This is a
// best-effort simulation of consumption, not a reservation: everything clamps
// at zero and the job is never blocked, even when stock runs out.
func (s *InventoryStore) ConsumeForJob(order *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalPages := order.TotalPages()

	blackPerPage := s.rates.BWPerPage
	if order.Options.PrintType == models.PrintColor {
		blackPerPage = s.rates.ColorPerPage
	}
	s.ink["black"] = clampFloat(s.ink["black"]-float64(totalPages)*blackPerPage, s.limits.InkMax)

	if order.Options.PrintType == models.PrintColor {
		perChannel := float64(totalPages) * s.rates.ColorPerPage * s.rates.ColorChannelFactor
		for _, color := range []string{"cyan", "magenta", "yellow"} {
			s.ink[color] = clampFloat(s.ink[color]-perChannel, s.limits.InkMax)
		}
	}

	sheets := totalPages
	if order.Options.Sided == models.DoubleSided {
		sheets = (totalPages + 1) / 2
	}
	size := order.Options.PaperSize
	if count, ok := s.paper[size]; ok {
		s.paper[size] = clampInt(count-sheets, s.limits.PaperMax[size])
	}

	s.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"pages":    totalPages,
		"sheets":   sheets,
		"paper":    size,
	}).Info("consumables deducted for job")

	s.checkAlertsLocked()
}

// LowStockItems returns everything below its restock threshold: ink colors
// under the ink threshold, paper sizes under the paper threshold, and
// stationery items under their own. Pure query, no side effects.
func (s *InventoryStore) LowStockItems() []models.LowStockItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lowStockLocked()
}

func (s *InventoryStore) lowStockLocked() []models.LowStockItem {
	var items []models.LowStockItem

	inkNames := make([]string, 0, len(s.ink))
	for name := range s.ink {
		inkNames = append(inkNames, name)
	}
	sort.Strings(inkNames)
	for _, name := range inkNames {
		if level := s.ink[name]; level < s.thresholds.InkLow {
			items = append(items, models.LowStockItem{
				ID:        "ink-" + name,
				Type:      "ink",
				Name:      titleCase(name) + " Ink",
				Quantity:  level,
				Unit:      "%",
				Threshold: s.thresholds.InkLow,
			})
		}
	}

	paperNames := make([]string, 0, len(s.paper))
	for name := range s.paper {
		paperNames = append(paperNames, name)
	}
	sort.Strings(paperNames)
	for _, name := range paperNames {
		if count := s.paper[name]; count < s.thresholds.PaperLow {
			items = append(items, models.LowStockItem{
				ID:        "paper-" + name,
				Type:      "paper",
				Name:      name + " Paper",
				Quantity:  float64(count),
				Unit:      "sheets",
				Threshold: float64(s.thresholds.PaperLow),
			})
		}
	}

	for _, item := range s.stationery {
		if item.Quantity < item.Threshold {
			items = append(items, models.LowStockItem{
				ID:        fmt.Sprintf("stationery-%d", item.ID),
				Type:      "stationery",
				Name:      item.Name,
				Quantity:  float64(item.Quantity),
				Unit:      item.Unit,
				Threshold: float64(item.Threshold),
			})
		}
	}

	return items
}

// AddStationeryItem registers a new supplementary stock item.
func (s *InventoryStore) AddStationeryItem(name string, quantity, threshold int, unit string) models.StationeryItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.StationeryItem{
		ID:            s.nextItemID,
		Name:          name,
		Quantity:      quantity,
		Threshold:     threshold,
		Unit:          unit,
		LastRestocked: restockDate(),
	}
	s.nextItemID++
	s.stationery = append(s.stationery, item)
	s.checkAlertsLocked()
	return item
}

// UpdateStationeryItem changes quantity and threshold of an existing item.
// A quantity increase counts as a restock.
func (s *InventoryStore) UpdateStationeryItem(id, quantity, threshold int) (models.StationeryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.stationery {
		if s.stationery[i].ID != id {
			continue
		}
		if quantity < 0 {
			quantity = 0
		}
		if quantity > s.stationery[i].Quantity {
			s.stationery[i].LastRestocked = restockDate()
		}
		s.stationery[i].Quantity = quantity
		if threshold >= 0 {
			s.stationery[i].Threshold = threshold
		}
		s.checkAlertsLocked()
		return s.stationery[i], nil
	}
	return models.StationeryItem{}, fmt.Errorf("%w: stationery item %d", ErrNotFound, id)
}

// checkAlertsLocked fires an inventoryAlert the first time an item drops
// below its threshold, re-arming once it recovers. Called after every
// mutation; the caller must hold the mutex.
func (s *InventoryStore) checkAlertsLocked() {
	low := s.lowStockLocked()
	metrics.LowStockItems.Set(float64(len(low)))
	current := make(map[string]bool, len(low))
	for _, item := range low {
		current[item.ID] = true
		if s.alerted[item.ID] {
			continue
		}
		s.alerted[item.ID] = true
		if s.feed != nil {
			msg := fmt.Sprintf("%s is running low: %g %s left (threshold %g)",
				item.Name, item.Quantity, item.Unit, item.Threshold)
			s.feed.Add(models.NotifyInventoryAlert, msg, 0)
		}
		s.log.WithFields(logrus.Fields{
			"item":     item.Name,
			"quantity": item.Quantity,
		}).Warn("stock below threshold")
	}
	for id := range s.alerted {
		if !current[id] {
			delete(s.alerted, id)
		}
	}
}

func clampFloat(v, max float64) float64 {
	return math.Min(math.Max(v, 0), max)
}

func clampInt(v, max int) int {
	if v < 0 {
		return 0
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
