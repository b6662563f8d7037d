package payments

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "whole dollars", amount: 10, want: 1000},
		{name: "two decimals", amount: 25.99, want: 2599},
		{name: "smallest unit", amount: 0.01, want: 1},
		{name: "binary-float edge", amount: 29.99, want: 2999},
		{name: "large amount", amount: 99999.99, want: 9999999},
		// 19.995 is 19.99499... in binary float, so the scaled value sits
		// below the half and rounds down. Fixed and documented.
		{name: "three decimals", amount: 19.995, want: 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MinorUnits(tt.amount))
		})
	}
}

func TestMinorUnits_RoundTrip(t *testing.T) {
	// Round-trip law: any amount with at most 2 decimal places survives
	// the conversion exactly.
	for _, amount := range []float64{0.01, 0.1, 1, 19.99, 25.99, 100.5, 4999.95} {
		require.Equal(t, amount, MajorUnits(MinorUnits(amount)), "amount %v", amount)
	}
}

func TestMajorUnits(t *testing.T) {
	require.Equal(t, 25.99, MajorUnits(2599))
	require.Equal(t, 0.01, MajorUnits(1))
	require.Equal(t, 0.0, MajorUnits(0))
}
