package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name  string
		value float64
		from  string
		to    string
		want  float64
	}{
		{"pounds to kilograms", 150, "lb", "kg", 68.0388555},
		{"kilograms to pounds", 70, "kg", "lb", 154.323583529},
		{"feet to meters", 5.9, "ft", "m", 1.79832},
		{"centimeters to meters", 180, "cm", "m", 1.8},
		{"milliliters to liters", 1000, "mL", "L", 1.0},
		{"fahrenheit to celsius", 98.6, "degF", "degC", 37.0},
		{"celsius to fahrenheit", 37, "degC", "degF", 98.6},
		{"kelvin to celsius", 310.15, "K", "degC", 37.0},
		{"kilopascal to mmHg", 13.3322387415, "kPa", "mmHg", 100.0},
		{"grams per liter to mg/dL", 1, "g/L", "mg/dL", 100.0},
		{"micromol to millimol per liter", 88.4, "umol/L", "mmol/L", 0.0884},
		{"years to seconds", 1, "year", "s", 31557600},
		{"per second to per minute", 0.5, "/s", "/min", 30},
		{"same unit is identity", 42, "mg/dL", "mg/dL", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-6)
		})
	}
}

func TestConverter_ConvertErrors(t *testing.T) {
	c := NewConverter()

	tests := []struct {
		name string
		from string
		to   string
	}{
		{"unknown source unit", "furlong", "m"},
		{"unknown target unit", "kg", "stone"},
		{"incompatible dimensions", "kg", "mmHg"},
		{"mass to molar concentration", "mg/dL", "mmol/L"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Convert(1, tt.from, tt.to)
			assert.Error(t, err)
		})
	}
}

func TestConverter_RoundTrip(t *testing.T) {
	c := NewConverter()

	pairs := [][2]string{
		{"lb", "kg"},
		{"ft", "m"},
		{"degF", "degC"},
		{"mmHg", "kPa"},
		{"umol/L", "mmol/L"},
		{"g/dL", "mg/dL"},
	}

	for _, pair := range pairs {
		t.Run(pair[0]+"<->"+pair[1], func(t *testing.T) {
			const original = 150.0
			forward, err := c.Convert(original, pair[0], pair[1])
			require.NoError(t, err)
			back, err := c.Convert(forward, pair[1], pair[0])
			require.NoError(t, err)

			relErr := math.Abs(back-original) / original
			assert.Less(t, relErr, 1e-6, "round trip drifted: %v -> %v -> %v", original, forward, back)
		})
	}
}

func TestConverter_Compatible(t *testing.T) {
	c := NewConverter()

	assert.True(t, c.Compatible("kg", "lb"))
	assert.True(t, c.Compatible("degC", "K"))
	assert.True(t, c.Compatible("bpm", "/min"))
	assert.False(t, c.Compatible("kg", "mmHg"))
	assert.False(t, c.Compatible("mg/dL", "mmol/L"))
	assert.False(t, c.Compatible("kg", "nonsense"))
}

func TestConverter_StandardUnit(t *testing.T) {
	c := NewConverter()

	unit, ok := c.StandardUnit("creatinine")
	require.True(t, ok)
	assert.Equal(t, "mg/dL", unit)

	unit, ok = c.StandardUnit("weight")
	require.True(t, ok)
	assert.Equal(t, "kg", unit)

	_, ok = c.StandardUnit("unknown_measurement")
	assert.False(t, ok)
}
