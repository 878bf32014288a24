package formula

import (
	"math"

	"github.com/clinical-scales-server/internal/domain"
)

// Point-sum scales: each required variable carries a point value and the
// score is the (possibly capped) sum. Weighted variants apply a per-variable
// weight to a binary indicator instead.

// sumPoints adds the point values of the named variables
func sumPoints(values map[string]domain.Value, names []string) (float64, error) {
	var total float64
	for _, name := range names {
		points, err := number(values, name)
		if err != nil {
			return 0, err
		}
		total += points
	}
	return total, nil
}

// cappedSum builds a Calculate that sums the named variables and caps the score
func cappedSum(names []string, cap float64) Calculate {
	return func(values map[string]domain.Value) (float64, error) {
		total, err := sumPoints(values, names)
		if err != nil {
			return 0, err
		}
		return math.Min(total, cap), nil
	}
}

// CHA2DS2-VASc: stroke risk in atrial fibrillation. Lip GY, et al. Chest. 2010.
// age contributes 0/1/2 and stroke 0/2; score capped at 9.
var cha2ds2VascVariables = []string{
	"chf", "hypertension", "age_category", "diabetes",
	"stroke_history", "vascular_disease", "sex_category",
}

// CURB-65: pneumonia severity. Lim WS, et al. Thorax. 2003. Five binary
// criteria, capped at 5.
var curb65Variables = []string{
	"confusion", "bun_elevated", "respiratory_rate_elevated",
	"low_blood_pressure", "age_65_or_older",
}

// Wells score for DVT. Wells PS, et al. NEJM. 2003. Nine positive criteria
// plus the -2 "alternative diagnosis at least as likely" criterion; the score
// may be negative and is not capped.
var wellsDVTVariables = []string{
	"active_cancer", "paralysis", "recently_bedridden", "localized_tenderness",
	"leg_swelling", "calf_swelling", "pitting_edema", "collateral_veins",
	"previous_dvt", "alternative_diagnosis",
}

func calculateWellsDVT(values map[string]domain.Value) (float64, error) {
	return sumPoints(values, wellsDVTVariables)
}

// classifyWellsDVT buckets the Wells score into pretest probability bands
func classifyWellsDVT(_ map[string]domain.Value, score float64) string {
	switch {
	case score <= 0:
		return "low"
	case score <= 2:
		return "moderate"
	default:
		return "high"
	}
}

// HEART score for major cardiac events. Six AJ, et al. Neth Heart J. 2008.
// Five criteria scored 0-2 each, capped at 10.
var heartScoreVariables = []string{
	"suspicious_history", "ekg_findings", "age_risk",
	"risk_factor_count", "initial_troponin",
}

func classifyHeartScore(_ map[string]domain.Value, score float64) string {
	switch {
	case score <= 3:
		return "low"
	case score <= 6:
		return "moderate"
	default:
		return "high"
	}
}

// CTS-6: carpal tunnel syndrome likelihood. Six binary findings with
// unequal weights; maximum 26.
var cts6Weights = map[string]float64{
	"median_numbness":          3.5,
	"nocturnal_numbness":       4,
	"thenar_atrophy":           5,
	"phalen_test":              5,
	"two_point_discrimination": 4.5,
	"tinel_sign":               4,
}

func calculateCTS6(values map[string]domain.Value) (float64, error) {
	var total float64
	for name, weight := range cts6Weights {
		present, err := boolean(values, name)
		if err != nil {
			return 0, err
		}
		if present {
			total += weight
		}
	}
	return total, nil
}

func classifyCTS6(_ map[string]domain.Value, score float64) string {
	// Probability bands from the CTS-6 validation cohort
	switch {
	case score < 5:
		return "low"
	case score <= 12:
		return "moderate"
	default:
		return "high"
	}
}

// Cardiotoxicity risk for cancer patients receiving chemotherapy. Categorical
// risk factors carry banded point values; capped sum classified into four
// risk tiers.
var cardiotoxicityPoints = map[string]map[string]float64{
	"previous_radiotherapy": {"no": 0, "yes": 2},
	"aml_diagnosis":         {"no": 0, "yes": 2},
	"monoclonal_antibodies": {"no": 0, "yes": 1},
	"baseline_lvef":         {">64%": 0, "54-63%": 2, "<=53%": 3},
	"baseline_creatinine":   {"<1.2 mg/dL": 0, "1.2-1.6 mg/dL": 1, "1.61-2.0 mg/dL": 2, ">2.0 mg/dL": 3},
}

func calculateCardiotoxicityRisk(values map[string]domain.Value) (float64, error) {
	var total float64
	for name, points := range cardiotoxicityPoints {
		category, err := text(values, name)
		if err != nil {
			return 0, err
		}
		total += points[category]
	}
	return math.Min(total, 11), nil
}

func classifyCardiotoxicityRisk(_ map[string]domain.Value, score float64) string {
	switch {
	case score <= 1:
		return "low"
	case score == 2:
		return "moderate"
	case score <= 4:
		return "high"
	default:
		return "very_high"
	}
}
