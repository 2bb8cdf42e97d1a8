package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingPolicyCost(t *testing.T) {
	policy := ShippingPolicy{FreeThreshold: 200000, FlatFee: 20000}

	tests := []struct {
		name     string
		subtotal int64
		want     int64
	}{
		{"below threshold", 79997, 20000},
		{"one unit below threshold", 199999, 20000},
		{"exactly at threshold", 200000, 0},
		{"above threshold", 350000, 0},
		{"empty cart subtotal", 0, 20000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Cost(tt.subtotal))
		})
	}
}
