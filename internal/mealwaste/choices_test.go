package mealwaste

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChoice(t *testing.T) {
	tests := []struct {
		name      string
		choice    string
		otherText string
		want      string
	}{
		{name: "listed choice", choice: "Composted", want: "Composted"},
		{name: "listed choice ignores other text", choice: "Expired", otherText: "mouldy", want: "Expired"},
		{name: "other with text", choice: Other, otherText: "  left on the bus ", want: "left on the bus"},
		{name: "other without text", choice: Other, otherText: "   ", want: Other},
		{name: "empty choice", choice: "", want: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveChoice(tt.choice, tt.otherText))
		})
	}
}

func TestWastedFraction(t *testing.T) {
	got, err := WastedFraction(25)
	require.NoError(t, err)
	assert.Equal(t, 0.25, got)

	got, err = WastedFraction(0)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = WastedFraction(100)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	for _, bad := range []float64{-0.1, 100.5, math.NaN()} {
		_, err := WastedFraction(bad)
		assert.ErrorIs(t, err, ErrInvalidWastePercentage)
	}
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(0.5))
	assert.ErrorIs(t, ValidateQuantity(0), ErrInvalidQuantity)
	assert.ErrorIs(t, ValidateQuantity(-1), ErrInvalidQuantity)
	assert.ErrorIs(t, ValidateQuantity(math.NaN()), ErrInvalidQuantity)
}
