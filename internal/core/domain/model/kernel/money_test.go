package kernel_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "exact amount is unchanged", amount: 110.00, expected: 110.00},
		{name: "half cent rounds up", amount: 10.005, expected: 10.01},
		{name: "below half cent rounds down", amount: 10.004, expected: 10.00},
		{name: "above half cent rounds up", amount: 10.006, expected: 10.01},
		{name: "per-kg fraction", amount: 150.666, expected: 150.67},
		{name: "zero stays zero", amount: 0, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, kernel.RoundMoney(tc.amount), 1e-9)
		})
	}
}
