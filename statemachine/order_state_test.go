package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printhub-api/models"
	"printhub-api/statemachine"
)

var allStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusApproved,
	models.StatusPrinting,
	models.StatusReady,
	models.StatusCompleted,
	models.StatusDelivered,
	models.StatusRejected,
}

func TestCanTransition_LegalPairsOnly(t *testing.T) {
	legal := map[models.OrderStatus][]models.OrderStatus{
		models.StatusPending:   {models.StatusApproved, models.StatusRejected},
		models.StatusApproved:  {models.StatusPrinting},
		models.StatusPrinting:  {models.StatusReady},
		models.StatusReady:     {models.StatusCompleted},
		models.StatusCompleted: {models.StatusDelivered},
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			allowed := false
			for _, next := range legal[from] {
				if next == to {
					allowed = true
				}
			}
			err := statemachine.CanTransition(from, to)
			if allowed {
				assert.NoError(t, err, "%s -> %s should be legal", from, to)
			} else {
				assert.Error(t, err, "%s -> %s should be illegal", from, to)
			}
		}
	}
}

func TestNextStatus_FollowsMainLine(t *testing.T) {
	cases := []struct {
		current models.OrderStatus
		next    models.OrderStatus
	}{
		{models.StatusPending, models.StatusApproved},
		{models.StatusApproved, models.StatusPrinting},
		{models.StatusPrinting, models.StatusReady},
		{models.StatusReady, models.StatusCompleted},
		{models.StatusCompleted, models.StatusDelivered},
		{models.StatusDelivered, ""},
		{models.StatusRejected, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.next, statemachine.NextStatus(tc.current), "next of %s", tc.current)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, statemachine.IsTerminal(models.StatusDelivered))
	assert.True(t, statemachine.IsTerminal(models.StatusRejected))
	for _, s := range []models.OrderStatus{
		models.StatusPending, models.StatusApproved, models.StatusPrinting,
		models.StatusReady, models.StatusCompleted,
	} {
		assert.False(t, statemachine.IsTerminal(s), "%s should not be terminal", s)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, statemachine.ValidStatus(s))
	}
	assert.False(t, statemachine.ValidStatus("shredded"))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Ready for Pickup", statemachine.LabelFor(models.StatusReady))
	assert.Equal(t, "Pending", statemachine.LabelFor(models.StatusPending))
	// Unknown statuses fall back to the raw value rather than guessing.
	assert.Equal(t, "mystery", statemachine.LabelFor(models.OrderStatus("mystery")))
}

func TestAllTransitions_CoversMainLineAndRejection(t *testing.T) {
	transitions := statemachine.AllTransitions()
	require.Len(t, transitions, 6)

	seen := map[string]bool{}
	for _, tr := range transitions {
		seen[tr["from"]+"->"+tr["to"]] = true
	}
	assert.True(t, seen["pending->approved"])
	assert.True(t, seen["pending->rejected"])
	assert.True(t, seen["completed->delivered"])
}
