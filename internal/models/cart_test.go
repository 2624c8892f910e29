package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  float64
	}{
		{"empty cart", nil, 0},
		{"single item", []CartItem{{Price: 10, Quantity: 2}}, 20},
		{"multiple items", []CartItem{
			{Price: 10, Quantity: 2},
			{Price: 20, Quantity: 1},
			{Price: 5, Quantity: 4},
		}, 60},
		{"zero quantity", []CartItem{
			{Price: 10, Quantity: 0},
			{Price: 20, Quantity: 1},
		}, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPrice(tt.items))
		})
	}
}
