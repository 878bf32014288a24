package formula

// builtinDefinitions returns the scale calculations compiled into the server.
// Scales without a Classify fall back to the evaluator's integer-truncation
// category key, which matches the point-sum interpretation tables.
func builtinDefinitions() []Definition {
	return []Definition{
		{
			CodeName:  "cha2ds2_vasc",
			Calculate: cappedSum(cha2ds2VascVariables, 9),
		},
		{
			CodeName:  "curb_65",
			Calculate: cappedSum(curb65Variables, 5),
		},
		{
			CodeName:  "wells_dvt",
			Calculate: calculateWellsDVT,
			Classify:  classifyWellsDVT,
		},
		{
			CodeName:  "heart_score",
			Calculate: cappedSum(heartScoreVariables, 10),
			Classify:  classifyHeartScore,
		},
		{
			CodeName:  "cts_6",
			Calculate: calculateCTS6,
			Classify:  classifyCTS6,
		},
		{
			CodeName:  "cardiotoxicity_risk",
			Calculate: calculateCardiotoxicityRisk,
			Classify:  classifyCardiotoxicityRisk,
		},
		{
			CodeName:  "cockcroft_gault",
			Calculate: calculateCockcroftGault,
			Classify:  classifyCockcroftGault,
		},
		{
			CodeName:  "calcium_correction",
			Calculate: calculateCalciumCorrection,
			Classify:  classifyCalciumCorrection,
		},
		{
			CodeName:  "meld",
			Calculate: calculateMELD,
			Classify:  classifyMELD,
		},
		{
			CodeName:  "prevent",
			Calculate: calculatePREVENT,
			Classify:  classifyPREVENT,
		},
	}
}
