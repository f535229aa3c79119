package statemachine

import (
	"errors"

	"printhub-api/models"
)

// validTransitions is the authoritative state machine definition.
// The lifecycle is linear, with a rejection branch out of pending:
//
//	pending -> approved -> printing -> ready -> completed -> delivered
//	pending -> rejected
//
// rejected and delivered are terminal.
var validTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusApproved, models.StatusRejected},
	models.StatusApproved:  {models.StatusPrinting},
	models.StatusPrinting:  {models.StatusReady},
	models.StatusReady:     {models.StatusCompleted},
	models.StatusCompleted: {models.StatusDelivered},
	models.StatusRejected:  {},
	models.StatusDelivered: {},
}

// statusLabels are the human-readable names the dashboard shows. Owning them
// here keeps the per-view label logic from being re-derived in every client.
var statusLabels = map[models.OrderStatus]string{
	models.StatusPending:   "Pending",
	models.StatusApproved:  "Approved",
	models.StatusPrinting:  "Printing",
	models.StatusReady:     "Ready for Pickup",
	models.StatusCompleted: "Completed",
	models.StatusDelivered: "Delivered",
	models.StatusRejected:  "Rejected",
}

// CanTransition checks whether an order may move from one state to another.
func CanTransition(from, to models.OrderStatus) error {
	for _, next := range validTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

// NextStatus returns the single forward successor of a status, or "" if the
// status is terminal. The rejection branch is not a forward step; advancing
// an order always means moving along the main line.
func NextStatus(current models.OrderStatus) models.OrderStatus {
	for _, next := range validTransitions[current] {
		if next != models.StatusRejected {
			return next
		}
	}
	return ""
}

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	return validTransitions[status]
}

// IsTerminal reports whether no further transitions are permitted.
func IsTerminal(status models.OrderStatus) bool {
	return len(validTransitions[status]) == 0
}

// ValidStatus reports whether s names a known order status.
func ValidStatus(s models.OrderStatus) bool {
	_, ok := validTransitions[s]
	return ok
}

// LabelFor returns the display label for a status.
func LabelFor(status models.OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := validTransitions[status]
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// AllTransitions returns the full state machine for documentation endpoints.
func AllTransitions() []map[string]string {
	order := []models.OrderStatus{
		models.StatusPending,
		models.StatusApproved,
		models.StatusPrinting,
		models.StatusReady,
		models.StatusCompleted,
	}
	var out []map[string]string
	for _, from := range order {
		for _, to := range validTransitions[from] {
			out = append(out, map[string]string{
				"from": string(from),
				"to":   string(to),
			})
		}
	}
	return out
}
