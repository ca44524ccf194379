package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{OrderStatusPending, OrderStatusInProgress, true},
		{OrderStatusPending, OrderStatusConfirmed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusCompleted, false},
		{OrderStatusInProgress, OrderStatusCompleted, true},
		{OrderStatusInProgress, OrderStatusCancelled, false},
		{OrderStatusInProgress, OrderStatusPending, false},
		{OrderStatusConfirmed, OrderStatusCompleted, true},
		{OrderStatusConfirmed, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
	}

	for _, tc := range cases {
		order := Order{Status: tc.from}
		assert.Equal(t, tc.allowed, order.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.True(t, OrderStatusTerminal(OrderStatusCompleted))
	assert.True(t, OrderStatusTerminal(OrderStatusCancelled))
	assert.False(t, OrderStatusTerminal(OrderStatusPending))
	assert.False(t, OrderStatusTerminal(OrderStatusInProgress))
	assert.False(t, OrderStatusTerminal(OrderStatusConfirmed))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus("pending"))
	assert.True(t, ValidOrderStatus("in_progress"))
	assert.False(t, ValidOrderStatus("new"))
	assert.False(t, ValidOrderStatus(""))
}
