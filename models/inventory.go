package models

// PrinterStatus is the process-wide availability flag gating order creation
// and print start.
type PrinterStatus string

const (
	PrinterOnline  PrinterStatus = "online"
	PrinterBusy    PrinterStatus = "busy"
	PrinterOffline PrinterStatus = "offline"
)

// ValidPrinterStatus reports whether s is one of the three allowed values.
func ValidPrinterStatus(s PrinterStatus) bool {
	return s == PrinterOnline || s == PrinterBusy || s == PrinterOffline
}

// StockCategory distinguishes the two bounded inventory tables.
type StockCategory string

const (
	CategoryInk   StockCategory = "ink"
	CategoryPaper StockCategory = "paper"
)

// StationeryItem is a supplementary stock-keeping item (binding materials,
// staples and so on) with its own restock threshold.
type StationeryItem struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Threshold     int    `json:"threshold"`
	Unit          string `json:"unit"`
	LastRestocked string `json:"last_restocked"`
}

// LowStockItem is one entry of the restock advisory list.
type LowStockItem struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"` // ink, paper or stationery
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Threshold float64 `json:"threshold"`
}
