package formula

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinical-scales-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func numbers(pairs map[string]float64) map[string]domain.Value {
	values := make(map[string]domain.Value, len(pairs))
	for name, n := range pairs {
		values[name] = domain.NumberValue(n)
	}
	return values
}

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry(testLogger())

	expected := []string{
		"calcium_correction", "cardiotoxicity_risk", "cha2ds2_vasc",
		"cockcroft_gault", "cts_6", "curb_65", "heart_score",
		"meld", "prevent", "wells_dvt",
	}
	assert.Equal(t, expected, r.Codes())

	_, ok := r.Lookup("cha2ds2_vasc")
	assert.True(t, ok)
	_, ok = r.Lookup("unknown_scale")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry(testLogger())

	err := r.Register(Definition{CodeName: "", Calculate: calculateWellsDVT})
	assert.Error(t, err)

	err = r.Register(Definition{CodeName: "custom_scale"})
	assert.Error(t, err)

	err = r.Register(Definition{CodeName: "meld", Calculate: calculateMELD})
	assert.Error(t, err, "duplicate registration must be rejected")

	err = r.Register(Definition{CodeName: "custom_scale", Calculate: calculateWellsDVT})
	assert.NoError(t, err)
	_, ok := r.Lookup("custom_scale")
	assert.True(t, ok)
}

func TestCHA2DS2VASc(t *testing.T) {
	tests := []struct {
		name   string
		points map[string]float64
		want   float64
	}{
		{
			name: "all zero",
			points: map[string]float64{
				"chf": 0, "hypertension": 0, "age_category": 0, "diabetes": 0,
				"stroke_history": 0, "vascular_disease": 0, "sex_category": 0,
			},
			want: 0,
		},
		{
			name: "maximum is capped at 9",
			points: map[string]float64{
				"chf": 1, "hypertension": 1, "age_category": 2, "diabetes": 1,
				"stroke_history": 2, "vascular_disease": 1, "sex_category": 1,
			},
			want: 9,
		},
		{
			name: "elderly woman with hypertension",
			points: map[string]float64{
				"chf": 0, "hypertension": 1, "age_category": 2, "diabetes": 0,
				"stroke_history": 0, "vascular_disease": 0, "sex_category": 1,
			},
			want: 4,
		},
	}

	def := mustLookup(t, "cha2ds2_vasc")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := def.Calculate(numbers(tt.points))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCHA2DS2VASc_MissingVariable(t *testing.T) {
	def := mustLookup(t, "cha2ds2_vasc")
	_, err := def.Calculate(numbers(map[string]float64{"chf": 1}))
	assert.Error(t, err)
}

func TestCURB65(t *testing.T) {
	def := mustLookup(t, "curb_65")

	allZero := numbers(map[string]float64{
		"confusion": 0, "bun_elevated": 0, "respiratory_rate_elevated": 0,
		"low_blood_pressure": 0, "age_65_or_older": 0,
	})
	got, err := def.Calculate(allZero)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	allOne := numbers(map[string]float64{
		"confusion": 1, "bun_elevated": 1, "respiratory_rate_elevated": 1,
		"low_blood_pressure": 1, "age_65_or_older": 1,
	})
	got, err = def.Calculate(allOne)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestWellsDVT(t *testing.T) {
	def := mustLookup(t, "wells_dvt")

	base := map[string]float64{
		"active_cancer": 0, "paralysis": 0, "recently_bedridden": 0,
		"localized_tenderness": 0, "leg_swelling": 0, "calf_swelling": 0,
		"pitting_edema": 0, "collateral_veins": 0, "previous_dvt": 0,
		"alternative_diagnosis": 0,
	}

	got, err := def.Calculate(numbers(base))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, "low", def.Classify(nil, got))

	// The alternative-diagnosis criterion subtracts 2: the score can be negative
	negative := numbers(base)
	negative["alternative_diagnosis"] = domain.NumberValue(-2)
	got, err = def.Calculate(negative)
	require.NoError(t, err)
	assert.Equal(t, -2.0, got)
	assert.Equal(t, "low", def.Classify(nil, got))

	high := map[string]float64{
		"active_cancer": 1, "paralysis": 1, "recently_bedridden": 1,
		"localized_tenderness": 1, "leg_swelling": 1, "calf_swelling": 1,
		"pitting_edema": 0, "collateral_veins": 0, "previous_dvt": 0,
		"alternative_diagnosis": 0,
	}
	got, err = def.Calculate(numbers(high))
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
	assert.Equal(t, "high", def.Classify(nil, got))
}

func TestHeartScore(t *testing.T) {
	def := mustLookup(t, "heart_score")

	got, err := def.Calculate(numbers(map[string]float64{
		"suspicious_history": 2, "ekg_findings": 2, "age_risk": 2,
		"risk_factor_count": 2, "initial_troponin": 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
	assert.Equal(t, "high", def.Classify(nil, got))

	got, err = def.Calculate(numbers(map[string]float64{
		"suspicious_history": 1, "ekg_findings": 0, "age_risk": 1,
		"risk_factor_count": 1, "initial_troponin": 0,
	}))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
	assert.Equal(t, "low", def.Classify(nil, got))
}

func TestCTS6(t *testing.T) {
	def := mustLookup(t, "cts_6")

	allPresent := map[string]domain.Value{
		"median_numbness":          domain.TextValue("yes"),
		"nocturnal_numbness":       domain.TextValue("yes"),
		"thenar_atrophy":           domain.TextValue("yes"),
		"phalen_test":              domain.TextValue("yes"),
		"two_point_discrimination": domain.TextValue("yes"),
		"tinel_sign":               domain.TextValue("yes"),
	}
	got, err := def.Calculate(allPresent)
	require.NoError(t, err)
	assert.Equal(t, 26.0, got)
	assert.Equal(t, "high", def.Classify(nil, got))

	nonePresent := map[string]domain.Value{
		"median_numbness":          domain.TextValue("no"),
		"nocturnal_numbness":       domain.TextValue("no"),
		"thenar_atrophy":           domain.TextValue("no"),
		"phalen_test":              domain.TextValue("no"),
		"two_point_discrimination": domain.TextValue("no"),
		"tinel_sign":               domain.TextValue("no"),
	}
	got, err = def.Calculate(nonePresent)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, "low", def.Classify(nil, got))

	// Weighted: numbness (3.5) + Phalen (5) alone
	partial := map[string]domain.Value{
		"median_numbness":          domain.TextValue("yes"),
		"nocturnal_numbness":       domain.TextValue("no"),
		"thenar_atrophy":           domain.TextValue("no"),
		"phalen_test":              domain.TextValue("yes"),
		"two_point_discrimination": domain.TextValue("no"),
		"tinel_sign":               domain.TextValue("no"),
	}
	got, err = def.Calculate(partial)
	require.NoError(t, err)
	assert.Equal(t, 8.5, got)
	assert.Equal(t, "moderate", def.Classify(nil, got))
}

func TestCardiotoxicityRisk(t *testing.T) {
	def := mustLookup(t, "cardiotoxicity_risk")

	lowRisk := map[string]domain.Value{
		"previous_radiotherapy": domain.TextValue("no"),
		"aml_diagnosis":         domain.TextValue("no"),
		"monoclonal_antibodies": domain.TextValue("no"),
		"baseline_lvef":         domain.TextValue(">64%"),
		"baseline_creatinine":   domain.TextValue("<1.2 mg/dL"),
	}
	got, err := def.Calculate(lowRisk)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
	assert.Equal(t, "low", def.Classify(nil, got))

	veryHigh := map[string]domain.Value{
		"previous_radiotherapy": domain.TextValue("yes"),
		"aml_diagnosis":         domain.TextValue("yes"),
		"monoclonal_antibodies": domain.TextValue("yes"),
		"baseline_lvef":         domain.TextValue("<=53%"),
		"baseline_creatinine":   domain.TextValue(">2.0 mg/dL"),
	}
	got, err = def.Calculate(veryHigh)
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)
	assert.Equal(t, "very_high", def.Classify(nil, got))
}

func TestCockcroftGault(t *testing.T) {
	def := mustLookup(t, "cockcroft_gault")

	tests := []struct {
		name   string
		values map[string]domain.Value
		want   float64
		stage  string
	}{
		{
			name: "young male normal creatinine",
			values: map[string]domain.Value{
				"age":        domain.NumberValue(30),
				"weight":     domain.NumberValue(70),
				"creatinine": domain.NumberValue(1.0),
				"sex":        domain.TextValue("male"),
			},
			want:  106.9,
			stage: "normal",
		},
		{
			name: "elderly female",
			values: map[string]domain.Value{
				"age":        domain.NumberValue(75),
				"weight":     domain.NumberValue(60),
				"creatinine": domain.NumberValue(1.1),
				"sex":        domain.TextValue("female"),
			},
			want:  41.9,
			stage: "moderately_decreased",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := def.Calculate(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.05)
			assert.Equal(t, tt.stage, def.Classify(nil, got))
		})
	}
}

func TestCockcroftGault_InvalidCreatinine(t *testing.T) {
	def := mustLookup(t, "cockcroft_gault")
	_, err := def.Calculate(map[string]domain.Value{
		"age":        domain.NumberValue(50),
		"weight":     domain.NumberValue(70),
		"creatinine": domain.NumberValue(0),
		"sex":        domain.TextValue("male"),
	})
	assert.Error(t, err)
}

func TestCalciumCorrection(t *testing.T) {
	def := mustLookup(t, "calcium_correction")

	got, err := def.Calculate(map[string]domain.Value{
		"serum_calcium":   domain.NumberValue(8.0),
		"patient_albumin": domain.NumberValue(2.0),
		"normal_albumin":  domain.NumberValue(4.0),
	})
	require.NoError(t, err)
	assert.InDelta(t, 9.6, got, 1e-9)
	assert.Equal(t, "normal", def.Classify(nil, got))

	assert.Equal(t, "hypocalcemia", def.Classify(nil, 7.9))
	assert.Equal(t, "hypercalcemia", def.Classify(nil, 11.2))
}

func TestMELD(t *testing.T) {
	def := mustLookup(t, "meld")

	tests := []struct {
		name   string
		values map[string]domain.Value
		want   float64
		band   string
	}{
		{
			name: "normal labs floor at 6",
			values: map[string]domain.Value{
				"dialysis":   domain.NumberValue(0),
				"creatinine": domain.NumberValue(0.9),
				"bilirubin":  domain.NumberValue(0.8),
				"inr":        domain.NumberValue(1.0),
				"sodium":     domain.NumberValue(140),
			},
			want: 6,
			band: "low",
		},
		{
			// Pre-sodium MELD is 28: the mortality band stays "high" even
			// though the sodium adjustment lifts the reported score to 32.
			name: "decompensated cirrhosis with hyponatremia",
			values: map[string]domain.Value{
				"dialysis":   domain.NumberValue(0),
				"creatinine": domain.NumberValue(2.5),
				"bilirubin":  domain.NumberValue(4.0),
				"inr":        domain.NumberValue(2.0),
				"sodium":     domain.NumberValue(128),
			},
			want: 32,
			band: "high",
		},
		{
			name: "dialysis forces creatinine to 4",
			values: map[string]domain.Value{
				"dialysis":   domain.NumberValue(1),
				"creatinine": domain.NumberValue(1.0),
				"bilirubin":  domain.NumberValue(2.0),
				"inr":        domain.NumberValue(1.5),
				"sodium":     domain.NumberValue(137),
			},
			want: 27,
			band: "high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := def.Calculate(tt.values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.band, def.Classify(tt.values, got))
		})
	}
}

func TestPREVENT(t *testing.T) {
	def := mustLookup(t, "prevent")

	tests := []struct {
		name      string
		values    map[string]domain.Value
		want      float64
		tolerance float64
		category  string
	}{
		{
			name: "low risk female 35",
			values: preventInputs("female", 35, 4.5, 1.5, 115, 95,
				false, false, false, false),
			want:      0.38,
			tolerance: 0.01,
			category:  "low",
		},
		{
			name: "intermediate risk male smoker 55",
			values: preventInputs("male", 55, 5.5, 1.0, 140, 75,
				false, true, true, false),
			want:      12.20,
			tolerance: 0.05,
			category:  "intermediate",
		},
		{
			name: "high risk diabetic male 65",
			values: preventInputs("male", 65, 6.0, 0.9, 150, 55,
				true, false, true, false),
			want:      27.93,
			tolerance: 0.05,
			category:  "high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := def.Calculate(tt.values)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.tolerance)
			assert.Equal(t, tt.category, def.Classify(nil, got))
		})
	}
}

func TestPREVENT_AgeOutOfRange(t *testing.T) {
	def := mustLookup(t, "prevent")
	_, err := def.Calculate(preventInputs("male", 25, 5.0, 1.3, 120, 90,
		false, false, false, false))
	assert.Error(t, err)
}

func preventInputs(sex string, age, tc, hdl, sbp, egfr float64,
	diabetes, smoker, antihtn, statin bool) map[string]domain.Value {
	b := func(v bool) domain.Value {
		if v {
			return domain.TextValue("true")
		}
		return domain.TextValue("false")
	}
	return map[string]domain.Value{
		"sex":                 domain.TextValue(sex),
		"age":                 domain.NumberValue(age),
		"total_cholesterol":   domain.NumberValue(tc),
		"hdl_cholesterol":     domain.NumberValue(hdl),
		"systolic_bp":         domain.NumberValue(sbp),
		"egfr":                domain.NumberValue(egfr),
		"diabetes":            b(diabetes),
		"current_smoker":      b(smoker),
		"on_antihypertensive": b(antihtn),
		"on_statin":           b(statin),
	}
}

func mustLookup(t *testing.T, codeName string) Definition {
	t.Helper()
	def, ok := NewRegistry(testLogger()).Lookup(codeName)
	require.True(t, ok, "built-in scale %q not registered", codeName)
	return def
}
