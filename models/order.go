package models

import "time"

// OrderStatus represents all possible states of a print order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusPrinting  OrderStatus = "printing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusDelivered OrderStatus = "delivered"
	StatusRejected  OrderStatus = "rejected"
)

// PrintType selects the ink class a job is billed and consumed at
type PrintType string

const (
	PrintBlackAndWhite PrintType = "bw"
	PrintColor         PrintType = "color"
)

// Sided selects single or double sided printing
type Sided string

const (
	SingleSided Sided = "single"
	DoubleSided Sided = "double"
)

// PrintFile is the metadata of one uploaded document. The file contents
// themselves never reach this service; only name, size and page count do.
type PrintFile struct {
	Name  string `json:"name"`
	Size  string `json:"size"`
	Pages int    `json:"pages"`
}

// PrintOptions are chosen by the student at submission and are immutable
// once the order exists.
type PrintOptions struct {
	Copies    int       `json:"copies"`
	PageRange string    `json:"page_range"` // "all" or a range expression like "1-5,8"
	PrintType PrintType `json:"print_type"`
	Sided     Sided     `json:"sided"`
	PaperSize string    `json:"paper_size"` // A4, A3, Letter, Legal
	Notes     string    `json:"notes,omitempty"`
}

// PaymentDetails is free-form metadata captured with the payment method.
type PaymentDetails struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Reference string `json:"reference,omitempty"`
}

// StatusEvent records one transition of an order, oldest first.
type StatusEvent struct {
	FromStatus OrderStatus `json:"from_status,omitempty"`
	ToStatus   OrderStatus `json:"to_status"`
	ChangedBy  uint        `json:"changed_by,omitempty"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}

type Order struct {
	ID             string          `json:"id"`
	UserID         uint            `json:"user_id"`
	Files          []PrintFile     `json:"files"`
	Options        PrintOptions    `json:"options"`
	Status         OrderStatus     `json:"status"`
	Cost           float64         `json:"cost"`
	OTP            string          `json:"otp,omitempty"` // set once, on first entering completed
	PaymentMethod  string          `json:"payment_method,omitempty"`
	PaymentDetails *PaymentDetails `json:"payment_details,omitempty"`
	StatusHistory  []StatusEvent   `json:"status_history,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// TotalPages is the raw page volume of the job: every page of every file,
// times the number of copies. Page-range selection affects billing only,
// not the consumption model.
func (o *Order) TotalPages() int {
	pages := 0
	for _, f := range o.Files {
		pages += f.Pages
	}
	return pages * o.Options.Copies
}

// ReceiptLine is one billed file on a receipt.
type ReceiptLine struct {
	FileName string `json:"file_name"`
	Pages    int    `json:"pages"`
	Copies   int    `json:"copies"`
}

// Receipt is a pure projection of an order for the billing view.
type Receipt struct {
	ReceiptID     string        `json:"receipt_id"`
	OrderID       string        `json:"order_id"`
	Date          time.Time     `json:"date"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"payment_method"`
	Lines         []ReceiptLine `json:"lines"`
}
