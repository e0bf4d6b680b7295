package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to payment pending", StatusPending, StatusPaymentPending, true},
		{"pending to payment confirmed", StatusPending, StatusPaymentConfirmed, true},
		{"pending straight to preparing", StatusPending, StatusPreparing, true},
		{"payment pending to confirmed", StatusPaymentPending, StatusPaymentConfirmed, true},
		{"payment confirmed to preparing", StatusPaymentConfirmed, StatusPreparing, true},
		{"preparing to ready", StatusPreparing, StatusReadyForPickup, true},
		{"ready to picked up", StatusReadyForPickup, StatusPickedUp, true},
		{"picked up to delivered", StatusPickedUp, StatusDelivered, true},

		{"no regress ready to preparing", StatusReadyForPickup, StatusPreparing, false},
		{"no skipping pickup", StatusReadyForPickup, StatusDelivered, false},
		{"no regress preparing to pending", StatusPreparing, StatusPending, false},
		{"payment pending cannot skip to preparing", StatusPaymentPending, StatusPreparing, false},
		{"delivered is final", StatusDelivered, StatusPending, false},
		{"cancelled is final", StatusCancelled, StatusPending, false},
		{"unknown target", StatusPending, OrderStatus("SHIPPED"), false},

		{"cancel from pending", StatusPending, StatusCancelled, true},
		{"cancel from payment pending", StatusPaymentPending, StatusCancelled, true},
		{"cancel from payment confirmed", StatusPaymentConfirmed, StatusCancelled, true},
		{"cancel from preparing", StatusPreparing, StatusCancelled, true},
		{"cancel from ready", StatusReadyForPickup, StatusCancelled, true},
		{"no cancel after pickup", StatusPickedUp, StatusCancelled, false},
		{"no cancel after delivery", StatusDelivered, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusDelivered))
	assert.True(t, IsTerminal(StatusCancelled))
	assert.False(t, IsTerminal(StatusPickedUp))
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusReadyForPickup))
}
