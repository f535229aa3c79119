package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printhub-api/models"
)

func newTestInventory() (*InventoryStore, *NotificationFeed) {
	feed := NewNotificationFeed()
	return NewInventoryStore(feed), feed
}

func colorOrder(files []models.PrintFile, copies int, sided models.Sided, paper string) *models.Order {
	return &models.Order{
		ID:    "ORD-0001",
		Files: files,
		Options: models.PrintOptions{
			Copies:    copies,
			PageRange: "all",
			PrintType: models.PrintColor,
			Sided:     sided,
			PaperSize: paper,
		},
	}
}

func TestAdjust_ClampsLow(t *testing.T) {
	inv, _ := newTestInventory()

	// black starts at 70
	v, err := inv.Adjust(models.CategoryInk, "black", -65)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-9)

	v, err = inv.Adjust(models.CategoryInk, "black", -10)
	require.NoError(t, err)
	assert.Zero(t, v, "reducing past zero clamps, never goes negative")
}

func TestAdjust_ClampsHigh(t *testing.T) {
	inv, _ := newTestInventory()

	v, err := inv.Adjust(models.CategoryInk, "cyan", 500)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 1e-9)

	v, err = inv.Adjust(models.CategoryPaper, "A4", 9999)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, v, 1e-9, "A4 stock clamps at its configured max")

	v, err = inv.Adjust(models.CategoryPaper, "A3", 9999)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v, 1e-9)
}

func TestAdjust_UnknownKey(t *testing.T) {
	inv, _ := newTestInventory()

	_, err := inv.Adjust(models.CategoryInk, "chartreuse", 10)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = inv.Adjust(models.CategoryPaper, "B5", -10)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = inv.Adjust(models.StockCategory("toner"), "black", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConsumeForJob_ColorDerivation(t *testing.T) {
	inv, _ := newTestInventory()

	// 2 files x 10 pages, 1 copy, color, single sided, A4.
	order := colorOrder([]models.PrintFile{
		{Name: "a.pdf", Pages: 10},
		{Name: "b.pdf", Pages: 10},
	}, 1, models.SingleSided, "A4")

	inv.ConsumeForJob(order)

	ink := inv.Ink()
	assert.InDelta(t, 70-20*0.2, ink["black"], 1e-9)
	assert.InDelta(t, 85-20*0.2*0.7, ink["cyan"], 1e-9)
	assert.InDelta(t, 90-20*0.2*0.7, ink["magenta"], 1e-9)
	assert.InDelta(t, 80-20*0.2*0.7, ink["yellow"], 1e-9)

	assert.Equal(t, 480, inv.Paper()["A4"])
}

func TestConsumeForJob_MonochromeTouchesBlackOnly(t *testing.T) {
	inv, _ := newTestInventory()

	order := colorOrder([]models.PrintFile{{Name: "a.pdf", Pages: 30}}, 1, models.SingleSided, "Letter")
	order.Options.PrintType = models.PrintBlackAndWhite

	inv.ConsumeForJob(order)

	ink := inv.Ink()
	assert.InDelta(t, 70-30*0.1, ink["black"], 1e-9)
	assert.InDelta(t, 85.0, ink["cyan"], 1e-9)
	assert.InDelta(t, 90.0, ink["magenta"], 1e-9)
	assert.InDelta(t, 80.0, ink["yellow"], 1e-9)
	assert.Equal(t, 220, inv.Paper()["Letter"])
}

func TestConsumeForJob_DoubleSidedHalvesSheets(t *testing.T) {
	inv, _ := newTestInventory()

	order := colorOrder([]models.PrintFile{{Name: "a.pdf", Pages: 15}}, 1, models.DoubleSided, "A4")
	inv.ConsumeForJob(order)

	// 15 pages double sided round up to 8 sheets.
	assert.Equal(t, 492, inv.Paper()["A4"])
}

func TestConsumeForJob_CopiesMultiply(t *testing.T) {
	inv, _ := newTestInventory()

	order := colorOrder([]models.PrintFile{{Name: "a.pdf", Pages: 10}}, 3, models.SingleSided, "A3")
	inv.ConsumeForJob(order)

	assert.Equal(t, 70, inv.Paper()["A3"])
}

func TestConsumeForJob_ClampsAtZero(t *testing.T) {
	inv, _ := newTestInventory()

	// Drain black ink to 1%, then print a big monochrome job.
	_, err := inv.Adjust(models.CategoryInk, "black", -69)
	require.NoError(t, err)

	order := colorOrder([]models.PrintFile{{Name: "thesis.pdf", Pages: 500}}, 1, models.SingleSided, "A4")
	order.Options.PrintType = models.PrintBlackAndWhite
	inv.ConsumeForJob(order)

	assert.Zero(t, inv.Ink()["black"], "consumption never drives ink negative")
	assert.Zero(t, inv.Paper()["A4"], "500 sheets drain the full A4 tray")
}

func TestLowStockItems_Thresholds(t *testing.T) {
	inv, _ := newTestInventory()

	// Nothing is low at opening stock.
	assert.Empty(t, inv.LowStockItems())

	_, err := inv.Adjust(models.CategoryInk, "black", -50) // 70 -> 20, below 25
	require.NoError(t, err)
	_, err = inv.Adjust(models.CategoryPaper, "Letter", -200) // 250 -> 50, below 100
	require.NoError(t, err)

	items := inv.LowStockItems()
	require.Len(t, items, 2)

	byID := map[string]models.LowStockItem{}
	for _, item := range items {
		byID[item.ID] = item
	}

	black := byID["ink-black"]
	assert.Equal(t, "ink", black.Type)
	assert.Equal(t, "Black Ink", black.Name)
	assert.InDelta(t, 20.0, black.Quantity, 1e-9)
	assert.Equal(t, "%", black.Unit)
	assert.InDelta(t, 25.0, black.Threshold, 1e-9)

	letter := byID["paper-Letter"]
	assert.Equal(t, "paper", letter.Type)
	assert.Equal(t, "Letter Paper", letter.Name)
	assert.InDelta(t, 50.0, letter.Quantity, 1e-9)
	assert.Equal(t, "sheets", letter.Unit)
}

func TestLowStockItems_Stationery(t *testing.T) {
	inv, _ := newTestInventory()

	item := inv.AddStationeryItem("Corner Clips", 4, 10, "boxes")
	items := inv.LowStockItems()
	require.Len(t, items, 1)
	assert.Equal(t, "stationery", items[0].Type)
	assert.Equal(t, "Corner Clips", items[0].Name)

	// Restocking above the threshold clears the advisory.
	_, err := inv.UpdateStationeryItem(item.ID, 50, -1)
	require.NoError(t, err)
	assert.Empty(t, inv.LowStockItems())
}

func TestUpdateStationeryItem_NotFound(t *testing.T) {
	inv, _ := newTestInventory()
	_, err := inv.UpdateStationeryItem(999, 10, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInventoryAlert_FiresOncePerCrossing(t *testing.T) {
	inv, feed := newTestInventory()

	_, err := inv.Adjust(models.CategoryInk, "yellow", -60) // 80 -> 20
	require.NoError(t, err)

	alerts := alertCount(feed)
	assert.Equal(t, 1, alerts)

	// Dropping further while already low does not re-alert.
	_, err = inv.Adjust(models.CategoryInk, "yellow", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, alertCount(feed))

	// Recovering and crossing again fires a fresh alert.
	_, err = inv.Adjust(models.CategoryInk, "yellow", 60)
	require.NoError(t, err)
	_, err = inv.Adjust(models.CategoryInk, "yellow", -60)
	require.NoError(t, err)
	assert.Equal(t, 2, alertCount(feed))
}

func alertCount(feed *NotificationFeed) int {
	n := 0
	for _, item := range feed.All() {
		if item.Type == models.NotifyInventoryAlert {
			n++
		}
	}
	return n
}
