package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRateType(t *testing.T) {
	tests := []struct {
		cell string
		want RateType
		ok   bool
	}{
		{"Annual", RateAnnual, true},
		{"  monthly  ", RateMonthly, true},
		{"WEEKLY", RateWeekly, true},
		{"Hourly", RateHourly, true},
		{"Biannual", RateBiannual, true},
		{"As Needed", RateAsNeeded, true},
		{"Variable", RateVariable, true},
		{"", RateUnknown, false},
		{"net 30", RateUnknown, false},
		{"annual rate", RateUnknown, false},
	}
	for _, tt := range tests {
		got, ok := ParseRateType(tt.cell)
		assert.Equal(t, tt.want, got, "cell %q", tt.cell)
		assert.Equal(t, tt.ok, ok, "cell %q", tt.cell)
	}
}

func TestRateTypeIsVariable(t *testing.T) {
	assert.True(t, RateVariable.IsVariable())
	assert.True(t, RateAsNeeded.IsVariable())
	assert.False(t, RateAnnual.IsVariable())
	assert.False(t, RateMonthly.IsVariable())
	assert.False(t, RateUnknown.IsVariable())
}

func TestOutcomeBool(t *testing.T) {
	v := OutcomeValid.Bool()
	if assert.NotNil(t, v) {
		assert.True(t, *v)
	}
	iv := OutcomeInvalid.Bool()
	if assert.NotNil(t, iv) {
		assert.False(t, *iv)
	}
	assert.Nil(t, OutcomeInapplicable.Bool())
	assert.Nil(t, Outcome("").Bool())
}
