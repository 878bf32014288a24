// Package units implements scalar conversion between clinical measurement
// units using dimensional analysis over SI/NIST conversion factors.
package units

import (
	"fmt"
	"math"
)

// unitDef maps a unit symbol onto its dimension and the affine transform to
// the dimension's base unit: base = value*factor + offset.
type unitDef struct {
	dimension string
	factor    float64
	offset    float64
}

// Dimension names
const (
	dimMass          = "mass"
	dimLength        = "length"
	dimVolume        = "volume"
	dimTemperature   = "temperature"
	dimPressure      = "pressure"
	dimMassConc      = "mass_concentration"
	dimMolarConc     = "molar_concentration"
	dimEquivConc     = "equivalent_concentration"
	dimTime          = "time"
	dimFrequency     = "frequency"
	dimArea          = "area"
	dimFiltration    = "filtration_rate"
	dimDimensionless = "dimensionless"
)

// defaultUnits is the built-in unit registry. Factors follow NIST SP 811.
// Note that mass concentration (mg/dL) and molar concentration (mmol/L) are
// distinct dimensions: converting between them needs a molecular weight,
// which is out of scope here.
func defaultUnits() map[string]unitDef {
	return map[string]unitDef{
		// Mass (base kg)
		"kg": {dimMass, 1, 0},
		"g":  {dimMass, 1e-3, 0},
		"mg": {dimMass, 1e-6, 0},
		"lb": {dimMass, 0.45359237, 0},
		"oz": {dimMass, 0.028349523125, 0},

		// Length (base m)
		"m":  {dimLength, 1, 0},
		"cm": {dimLength, 1e-2, 0},
		"mm": {dimLength, 1e-3, 0},
		"ft": {dimLength, 0.3048, 0},
		"in": {dimLength, 0.0254, 0},

		// Volume (base L)
		"L":      {dimVolume, 1, 0},
		"dL":     {dimVolume, 0.1, 0},
		"mL":     {dimVolume, 1e-3, 0},
		"gallon": {dimVolume, 3.785411784, 0},
		"fl_oz":  {dimVolume, 0.0295735295625, 0},

		// Temperature (base K, affine)
		"K":    {dimTemperature, 1, 0},
		"degC": {dimTemperature, 1, 273.15},
		"degF": {dimTemperature, 5.0 / 9.0, 459.67 * 5.0 / 9.0},

		// Pressure (base Pa)
		"Pa":   {dimPressure, 1, 0},
		"kPa":  {dimPressure, 1e3, 0},
		"mmHg": {dimPressure, 133.322387415, 0},
		"atm":  {dimPressure, 101325, 0},
		"psi":  {dimPressure, 6894.757293168, 0},

		// Mass concentration (base mg/dL)
		"mg/dL": {dimMassConc, 1, 0},
		"g/dL":  {dimMassConc, 1e3, 0},
		"g/L":   {dimMassConc, 1e2, 0},
		"mg/L":  {dimMassConc, 0.1, 0},

		// Molar concentration (base mmol/L)
		"mmol/L": {dimMolarConc, 1, 0},
		"mol/L":  {dimMolarConc, 1e3, 0},
		"umol/L": {dimMolarConc, 1e-3, 0},

		// Equivalent concentration (base mEq/L)
		"mEq/L": {dimEquivConc, 1, 0},

		// Time (base s)
		"s":     {dimTime, 1, 0},
		"min":   {dimTime, 60, 0},
		"h":     {dimTime, 3600, 0},
		"day":   {dimTime, 86400, 0},
		"week":  {dimTime, 604800, 0},
		"month": {dimTime, 2629800, 0},
		"year":  {dimTime, 31557600, 0},

		// Rates (base events per minute)
		"/min": {dimFrequency, 1, 0},
		"bpm":  {dimFrequency, 1, 0},
		"/s":   {dimFrequency, 60, 0},

		// Area (base m**2)
		"m**2":  {dimArea, 1, 0},
		"cm**2": {dimArea, 1e-4, 0},
		"ft**2": {dimArea, 0.09290304, 0},

		// Glomerular filtration rate, BSA-indexed
		"mL/min/1.73m**2": {dimFiltration, 1, 0},

		// Dimensionless clinical quantities
		"ratio": {dimDimensionless, 1, 0},
		"%":     {dimDimensionless, 0.01, 0},
	}
}

// standardUnits maps a measurement type onto its canonical unit
func standardUnits() map[string]string {
	return map[string]string{
		"mass":                       "kg",
		"weight":                     "kg",
		"length":                     "m",
		"height":                     "m",
		"volume":                     "L",
		"temperature":                "degC",
		"pressure":                   "mmHg",
		"blood_pressure":             "mmHg",
		"concentration":              "mg/dL",
		"molar_concentration":        "mmol/L",
		"glucose":                    "mg/dL",
		"creatinine":                 "mg/dL",
		"cholesterol":                "mmol/L",
		"hemoglobin":                 "g/dL",
		"time":                       "s",
		"age":                        "year",
		"heart_rate":                 "bpm",
		"respiratory_rate":           "/min",
		"area":                       "m**2",
		"body_surface_area":          "m**2",
		"glomerular_filtration_rate": "mL/min/1.73m**2",
	}
}

// Converter performs unit conversions against an immutable registry. A single
// Converter is safe for concurrent use.
type Converter struct {
	units     map[string]unitDef
	standards map[string]string
}

// NewConverter creates a converter with the built-in clinical unit registry
func NewConverter() *Converter {
	return &Converter{
		units:     defaultUnits(),
		standards: standardUnits(),
	}
}

// Known reports whether the unit symbol is registered
func (c *Converter) Known(unit string) bool {
	_, ok := c.units[unit]
	return ok
}

// Convert converts a value between two compatible units
func (c *Converter) Convert(value float64, fromUnit, toUnit string) (float64, error) {
	if fromUnit == toUnit {
		return value, nil
	}

	from, ok := c.units[fromUnit]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", fromUnit)
	}
	to, ok := c.units[toUnit]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", toUnit)
	}
	if from.dimension != to.dimension {
		return 0, fmt.Errorf("cannot convert %s to %s: incompatible dimensions (%s vs %s)",
			fromUnit, toUnit, from.dimension, to.dimension)
	}

	base := value*from.factor + from.offset
	converted := (base - to.offset) / to.factor

	if math.IsNaN(converted) || math.IsInf(converted, 0) {
		return 0, fmt.Errorf("conversion from %s to %s produced a non-finite value", fromUnit, toUnit)
	}
	return converted, nil
}

// Compatible reports whether two units share a dimension and can be converted
func (c *Converter) Compatible(unitA, unitB string) bool {
	if unitA == unitB {
		return c.Known(unitA)
	}
	a, okA := c.units[unitA]
	b, okB := c.units[unitB]
	return okA && okB && a.dimension == b.dimension
}

// StandardUnit returns the canonical unit for a measurement type
func (c *Converter) StandardUnit(measurementType string) (string, bool) {
	unit, ok := c.standards[measurementType]
	return unit, ok
}
