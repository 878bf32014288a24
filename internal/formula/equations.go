package formula

import (
	"fmt"
	"math"

	"github.com/clinical-scales-server/internal/domain"
)

// Equation-based scales: continuous formulas rather than point sums.

// Cockcroft-Gault creatinine clearance. Cockcroft DW, Gault MH.
// Nephron. 1976. CrCl = ((140 - age) * weight * sexFactor) / (72 * creatinine),
// weight in kg, creatinine in mg/dL, female factor 0.85.
func calculateCockcroftGault(values map[string]domain.Value) (float64, error) {
	age, err := number(values, "age")
	if err != nil {
		return 0, err
	}
	weight, err := number(values, "weight")
	if err != nil {
		return 0, err
	}
	creatinine, err := number(values, "creatinine")
	if err != nil {
		return 0, err
	}
	sex, err := text(values, "sex")
	if err != nil {
		return 0, err
	}

	if creatinine <= 0 {
		return 0, fmt.Errorf("creatinine must be positive, got %g", creatinine)
	}
	if age >= 140 {
		return 0, fmt.Errorf("age %g is outside the formula's validity range", age)
	}

	sexFactor := 1.0
	if sex == "female" {
		sexFactor = 0.85
	}

	crcl := ((140 - age) * weight * sexFactor) / (72 * creatinine)
	return math.Round(crcl*10) / 10, nil
}

// classifyCockcroftGault maps clearance onto KDIGO-style kidney function stages
func classifyCockcroftGault(_ map[string]domain.Value, crcl float64) string {
	switch {
	case crcl >= 90:
		return "normal"
	case crcl >= 60:
		return "mildly_decreased"
	case crcl >= 30:
		return "moderately_decreased"
	case crcl >= 15:
		return "severely_decreased"
	default:
		return "kidney_failure"
	}
}

// Albumin-corrected calcium. Corrected = 0.8 * (normalAlbumin - patientAlbumin)
// + serumCalcium, albumin in g/dL and calcium in mg/dL.
func calculateCalciumCorrection(values map[string]domain.Value) (float64, error) {
	serumCalcium, err := number(values, "serum_calcium")
	if err != nil {
		return 0, err
	}
	patientAlbumin, err := number(values, "patient_albumin")
	if err != nil {
		return 0, err
	}
	normalAlbumin, err := number(values, "normal_albumin")
	if err != nil {
		return 0, err
	}

	corrected := 0.8*(normalAlbumin-patientAlbumin) + serumCalcium
	return math.Round(corrected*100) / 100, nil
}

// classifyCalciumCorrection bands against the 8.5-10.5 mg/dL reference range
func classifyCalciumCorrection(_ map[string]domain.Value, corrected float64) string {
	switch {
	case corrected < 8.5:
		return "hypocalcemia"
	case corrected <= 10.5:
		return "normal"
	default:
		return "hypercalcemia"
	}
}

// MELD-Na: end-stage liver disease severity, UNOS/OPTN variant.
// Kamath PS, et al. Hepatology. 2001; Kim WR, et al. NEJM. 2008.
// Dialysis at least twice in the past week fixes creatinine at 4.0. Inputs are
// floored at 1.0 (sodium clamped to 125-137) and both stage scores clamped to
// 6-40.
func meldScores(values map[string]domain.Value) (meld, meldNa float64, err error) {
	creatinine, err := number(values, "creatinine")
	if err != nil {
		return 0, 0, err
	}
	bilirubin, err := number(values, "bilirubin")
	if err != nil {
		return 0, 0, err
	}
	inr, err := number(values, "inr")
	if err != nil {
		return 0, 0, err
	}
	sodium, err := number(values, "sodium")
	if err != nil {
		return 0, 0, err
	}
	onDialysis, err := boolean(values, "dialysis")
	if err != nil {
		return 0, 0, err
	}

	if onDialysis {
		creatinine = 4.0
	}
	creatinine = clamp(creatinine, 1.0, 4.0)
	bilirubin = math.Max(1.0, bilirubin)
	inr = math.Max(1.0, inr)
	sodium = clamp(sodium, 125, 137)

	meld = math.Round(10 * (0.957*math.Log(creatinine) +
		0.378*math.Log(bilirubin) +
		1.120*math.Log(inr) +
		0.643))
	meld = clamp(meld, 6, 40)

	meldNa = math.Round(meld + 1.32*(137-sodium) - 0.033*meld*(137-sodium))
	return meld, clamp(meldNa, 6, 40), nil
}

// calculateMELD reports the sodium-adjusted score
func calculateMELD(values map[string]domain.Value) (float64, error) {
	_, meldNa, err := meldScores(values)
	return meldNa, err
}

// classifyMELD maps onto 3-month mortality bands. The bands are defined
// against the pre-sodium MELD stage, not the reported MELD-Na value.
func classifyMELD(values map[string]domain.Value, score float64) string {
	meld := score
	if m, _, err := meldScores(values); err == nil {
		meld = m
	}
	switch {
	case meld <= 9:
		return "low"
	case meld <= 19:
		return "moderate"
	case meld <= 29:
		return "high"
	case meld <= 39:
		return "very_high"
	default:
		return "extreme"
	}
}

// PREVENT 10-year total CVD risk, base model. Khan SS, et al.
// Circulation. 2024;149:430-449. Sex-specific logistic regression over
// centered covariates; result is a percentage.
var preventFemaleCoef = map[string]float64{
	"cage":          0.7939,
	"cnhdl":         0.0305,
	"chdl":          -0.1607,
	"csbp":          -0.2394,
	"csbp2":         0.3600,
	"diabetes":      0.8668,
	"smoking":       0.5361,
	"cegfr":         0.6046,
	"cegfr2":        0.0434,
	"antihtn":       0.3152,
	"statin":        -0.1478,
	"csbp2_antihtn": -0.0664,
	"cnhdl_statin":  0.1198,
	"cage_cnhdl":    -0.0820,
	"cage_chdl":     0.0307,
	"cage_csbp2":    -0.0946,
	"cage_diabetes": -0.2706,
	"cage_smoking":  -0.0787,
	"cage_cegfr":    -0.1638,
	"constant":      -3.3077,
}

var preventMaleCoef = map[string]float64{
	"cage":          0.7689,
	"cnhdl":         0.0736,
	"chdl":          -0.0954,
	"csbp":          -0.4347,
	"csbp2":         0.3363,
	"diabetes":      0.7693,
	"smoking":       0.4387,
	"cegfr":         0.5379,
	"cegfr2":        0.0165,
	"antihtn":       0.2889,
	"statin":        -0.1337,
	"csbp2_antihtn": -0.0476,
	"cnhdl_statin":  0.1503,
	"cage_cnhdl":    -0.0518,
	"cage_chdl":     0.0191,
	"cage_csbp2":    -0.1049,
	"cage_diabetes": -0.2252,
	"cage_smoking":  -0.0895,
	"cage_cegfr":    -0.1543,
	"constant":      -3.0312,
}

func calculatePREVENT(values map[string]domain.Value) (float64, error) {
	sex, err := text(values, "sex")
	if err != nil {
		return 0, err
	}
	age, err := number(values, "age")
	if err != nil {
		return 0, err
	}
	totalChol, err := number(values, "total_cholesterol")
	if err != nil {
		return 0, err
	}
	hdl, err := number(values, "hdl_cholesterol")
	if err != nil {
		return 0, err
	}
	sbp, err := number(values, "systolic_bp")
	if err != nil {
		return 0, err
	}
	egfr, err := number(values, "egfr")
	if err != nil {
		return 0, err
	}
	diabetes, err := indicator(values, "diabetes")
	if err != nil {
		return 0, err
	}
	smoking, err := indicator(values, "current_smoker")
	if err != nil {
		return 0, err
	}
	antihtn, err := indicator(values, "on_antihypertensive")
	if err != nil {
		return 0, err
	}
	statin, err := indicator(values, "on_statin")
	if err != nil {
		return 0, err
	}

	if age < 30 || age > 79 {
		return 0, fmt.Errorf("age %g is outside the model's 30-79 validity range", age)
	}

	// Centered covariates per the published model
	cage := (age - 55) / 10
	cnhdl := totalChol - hdl - 3.5
	chdl := (hdl - 1.3) / 0.3
	csbp := (math.Min(sbp, 110) - 110) / 20
	csbp2 := (math.Max(sbp, 110) - 130) / 20
	cegfr := (math.Min(egfr, 60) - 60) / -15
	cegfr2 := (math.Max(egfr, 60) - 90) / -15

	coef := preventMaleCoef
	if sex == "female" {
		coef = preventFemaleCoef
	}

	x := coef["constant"]
	x += coef["cage"]*cage + coef["cnhdl"]*cnhdl + coef["chdl"]*chdl
	x += coef["csbp"]*csbp + coef["csbp2"]*csbp2
	x += coef["diabetes"]*diabetes + coef["smoking"]*smoking
	x += coef["cegfr"]*cegfr + coef["cegfr2"]*cegfr2
	x += coef["antihtn"]*antihtn + coef["statin"]*statin
	x += coef["csbp2_antihtn"]*csbp2*antihtn + coef["cnhdl_statin"]*cnhdl*statin
	x += coef["cage_cnhdl"]*cage*cnhdl + coef["cage_chdl"]*cage*chdl
	x += coef["cage_csbp2"]*cage*csbp2 + coef["cage_diabetes"]*cage*diabetes
	x += coef["cage_smoking"]*cage*smoking + coef["cage_cegfr"]*cage*cegfr

	risk := math.Exp(x) / (1 + math.Exp(x)) * 100
	return math.Round(risk*100) / 100, nil
}

// classifyPREVENT maps 10-year risk onto the ACC/AHA treatment thresholds
func classifyPREVENT(_ map[string]domain.Value, risk float64) string {
	switch {
	case risk < 5:
		return "low"
	case risk < 7.5:
		return "borderline"
	case risk < 20:
		return "intermediate"
	default:
		return "high"
	}
}

// indicator reads a boolean variable as a 0/1 regression term
func indicator(values map[string]domain.Value, name string) (float64, error) {
	b, err := boolean(values, name)
	if err != nil {
		return 0, err
	}
	if b {
		return 1, nil
	}
	return 0, nil
}
