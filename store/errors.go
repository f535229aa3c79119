package store

import "errors"

var (
	// ErrOrderNotFound is returned when an order id is unknown to the store.
	ErrOrderNotFound = errors.New("order not found")
	// ErrIllegalTransition is returned when the requested status is not
	// reachable from the order's current status.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrPrinterUnavailable is returned when order creation or print start
	// is attempted while the printer is offline.
	ErrPrinterUnavailable = errors.New("printer unavailable")
	// ErrInvalidOtp is returned when the supplied pickup code does not match
	// the one issued for the order.
	ErrInvalidOtp = errors.New("invalid OTP")
	// ErrNotFound covers generic lookup failures in inventory queries.
	ErrNotFound = errors.New("not found")
	// ErrNoFiles is returned when an order is submitted without any files.
	ErrNoFiles = errors.New("order must contain at least one file")
	// ErrInvalidOptions is returned when print options fail validation.
	ErrInvalidOptions = errors.New("invalid print options")
	// ErrInvalidPrinterStatus is returned for values outside online/busy/offline.
	ErrInvalidPrinterStatus = errors.New("invalid printer status")
)
