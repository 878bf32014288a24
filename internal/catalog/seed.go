package catalog

import "github.com/clinical-scales-server/internal/domain"

// Built-in catalog content. The memory store serves it directly; the SQLite
// store seeds an empty database from it on first open.

func seedVariables() []domain.VariableDefinition {
	return []domain.VariableDefinition{
		// Shared numerical variables
		{
			Name:        "age",
			Kind:        domain.NUMERICAL,
			Description: "Patient age in years",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "age",
				domain.LanguageES: "edad",
				domain.LanguagePT: "idade",
			},
			PossibleUnits: []string{"year"},
			StandardUnit:  "year",
		},
		{
			Name:        "weight",
			Kind:        domain.NUMERICAL,
			Description: "Patient body weight",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "weight",
				domain.LanguageES: "peso",
				domain.LanguagePT: "peso",
			},
			PossibleUnits: []string{"kg", "g", "lb"},
			StandardUnit:  "kg",
		},
		{
			Name:        "creatinine",
			Kind:        domain.NUMERICAL,
			Description: "Serum creatinine concentration",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "serum creatinine",
				domain.LanguageES: "creatinina sérica",
				domain.LanguagePT: "creatinina sérica",
			},
			PossibleUnits: []string{"mg/dL", "mg/L", "g/L"},
			StandardUnit:  "mg/dL",
		},
		{
			Name:        "sex",
			Kind:        domain.CATEGORICAL,
			Description: "Biological sex",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "sex",
				domain.LanguageES: "sexo",
				domain.LanguagePT: "sexo",
			},
			PossibleValues: []string{"male", "female"},
		},
		{
			Name:        "diabetes",
			Kind:        domain.CATEGORICAL,
			Description: "Diabetes mellitus diagnosis (1 if present, 0 if absent)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "diabetes mellitus",
				domain.LanguageES: "diabetes mellitus",
				domain.LanguagePT: "diabetes mellitus",
			},
			PossibleValues: []string{"0", "1"},
		},

		// CHA2DS2-VASc
		{
			Name:        "chf",
			Kind:        domain.CATEGORICAL,
			Description: "Congestive heart failure or left ventricular dysfunction (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "congestive heart failure",
				domain.LanguageES: "insuficiencia cardíaca congestiva",
				domain.LanguagePT: "insuficiência cardíaca congestiva",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "hypertension",
			Kind:        domain.CATEGORICAL,
			Description: "Arterial hypertension or antihypertensive treatment (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "hypertension",
				domain.LanguageES: "hipertensión arterial",
				domain.LanguagePT: "hipertensão arterial",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "age_category",
			Kind:        domain.CATEGORICAL,
			Description: "Age band: 0 if under 65, 1 if 65-74, 2 if 75 or older",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "age band",
				domain.LanguageES: "franja de edad",
				domain.LanguagePT: "faixa etária",
			},
			PossibleValues: []string{"0", "1", "2"},
		},
		{
			Name:        "stroke_history",
			Kind:        domain.CATEGORICAL,
			Description: "Prior stroke, TIA or thromboembolism (2 if present, 0 if absent)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "prior stroke or TIA",
				domain.LanguageES: "ictus o AIT previo",
				domain.LanguagePT: "AVC ou AIT prévio",
			},
			PossibleValues: []string{"0", "2"},
		},
		{
			Name:        "vascular_disease",
			Kind:        domain.CATEGORICAL,
			Description: "Vascular disease: prior MI, peripheral artery disease or aortic plaque (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "vascular disease",
				domain.LanguageES: "enfermedad vascular",
				domain.LanguagePT: "doença vascular",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "sex_category",
			Kind:        domain.CATEGORICAL,
			Description: "Sex category: 1 if female, 0 if male",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "sex category",
				domain.LanguageES: "categoría de sexo",
				domain.LanguagePT: "categoria de sexo",
			},
			PossibleValues: []string{"0", "1"},
		},

		// CURB-65
		{
			Name:        "confusion",
			Kind:        domain.CATEGORICAL,
			Description: "New-onset confusion or disorientation (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "confusion",
				domain.LanguageES: "confusión",
				domain.LanguagePT: "confusão",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "bun_elevated",
			Kind:        domain.CATEGORICAL,
			Description: "Blood urea nitrogen above 19 mg/dL (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "elevated blood urea nitrogen",
				domain.LanguageES: "nitrógeno ureico elevado",
				domain.LanguagePT: "ureia elevada",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "respiratory_rate_elevated",
			Kind:        domain.CATEGORICAL,
			Description: "Respiratory rate of 30 breaths per minute or higher (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "elevated respiratory rate",
				domain.LanguageES: "frecuencia respiratoria elevada",
				domain.LanguagePT: "frequência respiratória elevada",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "low_blood_pressure",
			Kind:        domain.CATEGORICAL,
			Description: "Systolic below 90 mmHg or diastolic at or below 60 mmHg (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "low blood pressure",
				domain.LanguageES: "presión arterial baja",
				domain.LanguagePT: "pressão arterial baixa",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "age_65_or_older",
			Kind:        domain.CATEGORICAL,
			Description: "Age 65 years or older (1 if true)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "age 65 or older",
				domain.LanguageES: "edad de 65 años o más",
				domain.LanguagePT: "idade de 65 anos ou mais",
			},
			PossibleValues: []string{"0", "1"},
		},

		// Wells DVT
		{
			Name:        "active_cancer",
			Kind:        domain.CATEGORICAL,
			Description: "Active cancer, treatment within 6 months or palliative (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "active cancer",
				domain.LanguageES: "cáncer activo",
				domain.LanguagePT: "câncer ativo",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "paralysis",
			Kind:        domain.CATEGORICAL,
			Description: "Paralysis, paresis or recent leg immobilization (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "paralysis or immobilization",
				domain.LanguageES: "parálisis o inmovilización",
				domain.LanguagePT: "paralisia ou imobilização",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "recently_bedridden",
			Kind:        domain.CATEGORICAL,
			Description: "Bedridden more than 3 days or major surgery within 12 weeks (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "recently bedridden",
				domain.LanguageES: "encamado recientemente",
				domain.LanguagePT: "acamado recentemente",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "localized_tenderness",
			Kind:        domain.CATEGORICAL,
			Description: "Localized tenderness along the deep venous system (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "localized tenderness",
				domain.LanguageES: "dolor localizado",
				domain.LanguagePT: "dor localizada",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "leg_swelling",
			Kind:        domain.CATEGORICAL,
			Description: "Entire leg swollen (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "entire leg swollen",
				domain.LanguageES: "pierna completamente hinchada",
				domain.LanguagePT: "perna inteira inchada",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "calf_swelling",
			Kind:        domain.CATEGORICAL,
			Description: "Calf swelling over 3 cm compared to the other leg (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "calf swelling",
				domain.LanguageES: "hinchazón de pantorrilla",
				domain.LanguagePT: "inchaço da panturrilha",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "pitting_edema",
			Kind:        domain.CATEGORICAL,
			Description: "Pitting edema greater in the symptomatic leg (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "pitting edema",
				domain.LanguageES: "edema con fóvea",
				domain.LanguagePT: "edema depressível",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "collateral_veins",
			Kind:        domain.CATEGORICAL,
			Description: "Collateral superficial non-varicose veins (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "collateral superficial veins",
				domain.LanguageES: "venas superficiales colaterales",
				domain.LanguagePT: "veias superficiais colaterais",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "previous_dvt",
			Kind:        domain.CATEGORICAL,
			Description: "Previously documented deep vein thrombosis (1 if present)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "previous DVT",
				domain.LanguageES: "TVP previa",
				domain.LanguagePT: "TVP prévia",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "alternative_diagnosis",
			Kind:        domain.CATEGORICAL,
			Description: "Alternative diagnosis at least as likely as DVT (-2 if present, 0 if absent)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "alternative diagnosis likely",
				domain.LanguageES: "diagnóstico alternativo probable",
				domain.LanguagePT: "diagnóstico alternativo provável",
			},
			PossibleValues: []string{"0", "-2"},
		},

		// HEART
		{
			Name:        "suspicious_history",
			Kind:        domain.CATEGORICAL,
			Description: "Clinical history suspicion: 0 slightly, 1 moderately, 2 highly suspicious",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "history suspicion level",
				domain.LanguageES: "nivel de sospecha de la historia clínica",
				domain.LanguagePT: "nível de suspeita da história clínica",
			},
			PossibleValues: []string{"0", "1", "2"},
		},
		{
			Name:        "ekg_findings",
			Kind:        domain.CATEGORICAL,
			Description: "EKG: 0 normal, 1 nonspecific repolarization disturbance, 2 significant ST deviation",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "EKG findings",
				domain.LanguageES: "hallazgos del ECG",
				domain.LanguagePT: "achados do ECG",
			},
			PossibleValues: []string{"0", "1", "2"},
		},
		{
			Name:        "age_risk",
			Kind:        domain.CATEGORICAL,
			Description: "Age band: 0 if under 45, 1 if 45-64, 2 if 65 or older",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "age risk band",
				domain.LanguageES: "franja de riesgo por edad",
				domain.LanguagePT: "faixa de risco por idade",
			},
			PossibleValues: []string{"0", "1", "2"},
		},
		{
			Name:        "risk_factor_count",
			Kind:        domain.CATEGORICAL,
			Description: "Cardiovascular risk factors: 0 none, 1 one or two, 2 three or more or atherosclerotic disease",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "cardiovascular risk factors",
				domain.LanguageES: "factores de riesgo cardiovascular",
				domain.LanguagePT: "fatores de risco cardiovascular",
			},
			PossibleValues: []string{"0", "1", "2"},
		},
		{
			Name:        "initial_troponin",
			Kind:        domain.CATEGORICAL,
			Description: "Initial troponin: 0 at or below normal limit, 1 one to three times, 2 above three times the limit",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "initial troponin",
				domain.LanguageES: "troponina inicial",
				domain.LanguagePT: "troponina inicial",
			},
			PossibleValues: []string{"0", "1", "2"},
		},

		// CTS-6
		{
			Name:        "median_numbness",
			Kind:        domain.CATEGORICAL,
			Description: "Numbness in the median nerve distribution (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "median nerve numbness",
				domain.LanguageES: "entumecimiento en territorio del mediano",
				domain.LanguagePT: "dormência no território do mediano",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "nocturnal_numbness",
			Kind:        domain.CATEGORICAL,
			Description: "Nocturnal numbness waking the patient (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "nocturnal numbness",
				domain.LanguageES: "entumecimiento nocturno",
				domain.LanguagePT: "dormência noturna",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "thenar_atrophy",
			Kind:        domain.CATEGORICAL,
			Description: "Thenar muscle atrophy or weakness (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "thenar atrophy",
				domain.LanguageES: "atrofia tenar",
				domain.LanguagePT: "atrofia tenar",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "phalen_test",
			Kind:        domain.CATEGORICAL,
			Description: "Positive Phalen test (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "Phalen test",
				domain.LanguageES: "prueba de Phalen",
				domain.LanguagePT: "teste de Phalen",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "two_point_discrimination",
			Kind:        domain.CATEGORICAL,
			Description: "Loss of two-point discrimination (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "two-point discrimination loss",
				domain.LanguageES: "pérdida de discriminación de dos puntos",
				domain.LanguagePT: "perda de discriminação de dois pontos",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "tinel_sign",
			Kind:        domain.CATEGORICAL,
			Description: "Positive Tinel sign over the carpal tunnel (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "Tinel sign",
				domain.LanguageES: "signo de Tinel",
				domain.LanguagePT: "sinal de Tinel",
			},
			PossibleValues: []string{"no", "yes"},
		},

		// Cardiotoxicity risk
		{
			Name:        "previous_radiotherapy",
			Kind:        domain.CATEGORICAL,
			Description: "Previous thoracic radiotherapy (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "previous radiotherapy",
				domain.LanguageES: "radioterapia previa",
				domain.LanguagePT: "radioterapia prévia",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "aml_diagnosis",
			Kind:        domain.CATEGORICAL,
			Description: "Acute myeloid leukemia diagnosis (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "AML diagnosis",
				domain.LanguageES: "diagnóstico de LMA",
				domain.LanguagePT: "diagnóstico de LMA",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "monoclonal_antibodies",
			Kind:        domain.CATEGORICAL,
			Description: "Treatment with monoclonal antibodies (yes/no)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "monoclonal antibody therapy",
				domain.LanguageES: "tratamiento con anticuerpos monoclonales",
				domain.LanguagePT: "tratamento com anticorpos monoclonais",
			},
			PossibleValues: []string{"no", "yes"},
		},
		{
			Name:        "baseline_lvef",
			Kind:        domain.CATEGORICAL,
			Description: "Baseline left ventricular ejection fraction band",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "baseline LVEF",
				domain.LanguageES: "FEVI basal",
				domain.LanguagePT: "FEVE basal",
			},
			PossibleValues: []string{">64%", "54-63%", "<=53%"},
		},
		{
			Name:        "baseline_creatinine",
			Kind:        domain.CATEGORICAL,
			Description: "Baseline serum creatinine band",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "baseline creatinine band",
				domain.LanguageES: "banda de creatinina basal",
				domain.LanguagePT: "faixa de creatinina basal",
			},
			PossibleValues: []string{"<1.2 mg/dL", "1.2-1.6 mg/dL", "1.61-2.0 mg/dL", ">2.0 mg/dL"},
		},

		// Calcium correction
		{
			Name:        "serum_calcium",
			Kind:        domain.NUMERICAL,
			Description: "Measured total serum calcium",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "serum calcium",
				domain.LanguageES: "calcio sérico",
				domain.LanguagePT: "cálcio sérico",
			},
			PossibleUnits: []string{"mg/dL", "mg/L"},
			StandardUnit:  "mg/dL",
		},
		{
			Name:        "patient_albumin",
			Kind:        domain.NUMERICAL,
			Description: "Patient serum albumin",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "serum albumin",
				domain.LanguageES: "albúmina sérica",
				domain.LanguagePT: "albumina sérica",
			},
			PossibleUnits: []string{"g/dL", "g/L"},
			StandardUnit:  "g/dL",
		},
		{
			Name:        "normal_albumin",
			Kind:        domain.NUMERICAL,
			Description: "Laboratory reference albumin, typically 4 g/dL",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "reference albumin",
				domain.LanguageES: "albúmina de referencia",
				domain.LanguagePT: "albumina de referência",
			},
			PossibleUnits: []string{"g/dL", "g/L"},
			StandardUnit:  "g/dL",
		},

		// MELD
		{
			Name:        "dialysis",
			Kind:        domain.CATEGORICAL,
			Description: "Dialysis at least twice in the past week (1 if yes)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "dialysis in past week",
				domain.LanguageES: "diálisis en la última semana",
				domain.LanguagePT: "diálise na última semana",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "bilirubin",
			Kind:        domain.NUMERICAL,
			Description: "Total serum bilirubin",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "total bilirubin",
				domain.LanguageES: "bilirrubina total",
				domain.LanguagePT: "bilirrubina total",
			},
			PossibleUnits: []string{"mg/dL", "mg/L"},
			StandardUnit:  "mg/dL",
		},
		{
			Name:        "inr",
			Kind:        domain.NUMERICAL,
			Description: "International normalized ratio",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "INR",
				domain.LanguageES: "INR",
				domain.LanguagePT: "INR",
			},
			PossibleUnits: []string{"ratio"},
			StandardUnit:  "ratio",
		},
		{
			Name:        "sodium",
			Kind:        domain.NUMERICAL,
			Description: "Serum sodium",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "serum sodium",
				domain.LanguageES: "sodio sérico",
				domain.LanguagePT: "sódio sérico",
			},
			PossibleUnits: []string{"mEq/L"},
			StandardUnit:  "mEq/L",
		},

		// PREVENT
		{
			Name:        "total_cholesterol",
			Kind:        domain.NUMERICAL,
			Description: "Total cholesterol",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "total cholesterol",
				domain.LanguageES: "colesterol total",
				domain.LanguagePT: "colesterol total",
			},
			PossibleUnits: []string{"mmol/L", "mol/L", "umol/L"},
			StandardUnit:  "mmol/L",
		},
		{
			Name:        "hdl_cholesterol",
			Kind:        domain.NUMERICAL,
			Description: "HDL cholesterol",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "HDL cholesterol",
				domain.LanguageES: "colesterol HDL",
				domain.LanguagePT: "colesterol HDL",
			},
			PossibleUnits: []string{"mmol/L", "mol/L", "umol/L"},
			StandardUnit:  "mmol/L",
		},
		{
			Name:        "systolic_bp",
			Kind:        domain.NUMERICAL,
			Description: "Systolic blood pressure",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "systolic blood pressure",
				domain.LanguageES: "presión arterial sistólica",
				domain.LanguagePT: "pressão arterial sistólica",
			},
			PossibleUnits: []string{"mmHg", "kPa"},
			StandardUnit:  "mmHg",
		},
		{
			Name:        "egfr",
			Kind:        domain.NUMERICAL,
			Description: "Estimated glomerular filtration rate",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "eGFR",
				domain.LanguageES: "TFGe",
				domain.LanguagePT: "TFGe",
			},
			PossibleUnits: []string{"mL/min/1.73m**2"},
			StandardUnit:  "mL/min/1.73m**2",
		},
		{
			Name:        "current_smoker",
			Kind:        domain.CATEGORICAL,
			Description: "Current cigarette smoking (1 if yes)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "current smoker",
				domain.LanguageES: "fumador actual",
				domain.LanguagePT: "fumante atual",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "on_antihypertensive",
			Kind:        domain.CATEGORICAL,
			Description: "On antihypertensive medication (1 if yes)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "on antihypertensive therapy",
				domain.LanguageES: "en tratamiento antihipertensivo",
				domain.LanguagePT: "em tratamento anti-hipertensivo",
			},
			PossibleValues: []string{"0", "1"},
		},
		{
			Name:        "on_statin",
			Kind:        domain.CATEGORICAL,
			Description: "On statin therapy (1 if yes)",
			MedicalName: domain.LocalizedText{
				domain.LanguageEN: "on statin therapy",
				domain.LanguageES: "en tratamiento con estatinas",
				domain.LanguagePT: "em tratamento com estatina",
			},
			PossibleValues: []string{"0", "1"},
		},
	}
}

func seedScales() []domain.ScaleDefinition {
	return []domain.ScaleDefinition{
		{
			CodeName: "cha2ds2_vasc",
			Name: domain.LocalizedText{
				domain.LanguageEN: "CHA2DS2-VASc Score",
				domain.LanguageES: "Escala CHA2DS2-VASc",
				domain.LanguagePT: "Escala CHA2DS2-VASc",
			},
			Description: "Stroke risk in non-valvular atrial fibrillation",
			RequiredVariables: []string{
				"chf", "hypertension", "age_category", "diabetes",
				"stroke_history", "vascular_disease", "sex_category",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"0": "Low stroke risk; anticoagulation not recommended",
					"1": "Low-moderate stroke risk; consider anticoagulation in males",
					"2": "Moderate stroke risk; oral anticoagulation recommended",
					"3": "Moderate-high stroke risk; oral anticoagulation recommended",
					"4": "High stroke risk; oral anticoagulation recommended",
					"5": "High stroke risk; oral anticoagulation recommended",
					"6": "Very high stroke risk; oral anticoagulation recommended",
					"7": "Very high stroke risk; oral anticoagulation recommended",
					"8": "Very high stroke risk; oral anticoagulation recommended",
					"9": "Very high stroke risk; oral anticoagulation recommended",
				},
				domain.LanguageES: {
					"0": "Riesgo bajo de ictus; no se recomienda anticoagulación",
					"1": "Riesgo bajo-moderado; considerar anticoagulación en varones",
					"2": "Riesgo moderado; se recomienda anticoagulación oral",
					"3": "Riesgo moderado-alto; se recomienda anticoagulación oral",
					"4": "Riesgo alto; se recomienda anticoagulación oral",
					"5": "Riesgo alto; se recomienda anticoagulación oral",
					"6": "Riesgo muy alto; se recomienda anticoagulación oral",
					"7": "Riesgo muy alto; se recomienda anticoagulación oral",
					"8": "Riesgo muy alto; se recomienda anticoagulación oral",
					"9": "Riesgo muy alto; se recomienda anticoagulación oral",
				},
				domain.LanguagePT: {
					"0": "Risco baixo de AVC; anticoagulação não recomendada",
					"1": "Risco baixo-moderado; considerar anticoagulação em homens",
					"2": "Risco moderado; anticoagulação oral recomendada",
					"3": "Risco moderado-alto; anticoagulação oral recomendada",
					"4": "Risco alto; anticoagulação oral recomendada",
					"5": "Risco alto; anticoagulação oral recomendada",
					"6": "Risco muito alto; anticoagulação oral recomendada",
					"7": "Risco muito alto; anticoagulação oral recomendada",
					"8": "Risco muito alto; anticoagulação oral recomendada",
					"9": "Risco muito alto; anticoagulação oral recomendada",
				},
			},
			Categories: []string{"cardiology"},
		},
		{
			CodeName: "curb_65",
			Name: domain.LocalizedText{
				domain.LanguageEN: "CURB-65 Score",
				domain.LanguageES: "Escala CURB-65",
				domain.LanguagePT: "Escala CURB-65",
			},
			Description: "Community-acquired pneumonia severity",
			RequiredVariables: []string{
				"confusion", "bun_elevated", "respiratory_rate_elevated",
				"low_blood_pressure", "age_65_or_older",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"0": "Low severity; consider outpatient treatment",
					"1": "Low severity; consider outpatient treatment",
					"2": "Moderate severity; consider short hospital stay or supervised outpatient care",
					"3": "Severe pneumonia; hospitalize, consider ICU assessment",
					"4": "Severe pneumonia; hospitalize, consider ICU assessment",
					"5": "Severe pneumonia; hospitalize, consider ICU assessment",
				},
				domain.LanguageES: {
					"0": "Gravedad baja; considerar tratamiento ambulatorio",
					"1": "Gravedad baja; considerar tratamiento ambulatorio",
					"2": "Gravedad moderada; considerar ingreso corto o tratamiento ambulatorio supervisado",
					"3": "Neumonía grave; hospitalizar y valorar UCI",
					"4": "Neumonía grave; hospitalizar y valorar UCI",
					"5": "Neumonía grave; hospitalizar y valorar UCI",
				},
				domain.LanguagePT: {
					"0": "Gravidade baixa; considerar tratamento ambulatorial",
					"1": "Gravidade baixa; considerar tratamento ambulatorial",
					"2": "Gravidade moderada; considerar internação curta ou tratamento ambulatorial supervisionado",
					"3": "Pneumonia grave; internar e avaliar UTI",
					"4": "Pneumonia grave; internar e avaliar UTI",
					"5": "Pneumonia grave; internar e avaliar UTI",
				},
			},
			Categories: []string{"pulmonology", "infectious_disease"},
		},
		{
			CodeName: "wells_dvt",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Wells Score for DVT",
				domain.LanguageES: "Escala de Wells para TVP",
				domain.LanguagePT: "Escala de Wells para TVP",
			},
			Description: "Deep vein thrombosis pretest probability",
			RequiredVariables: []string{
				"active_cancer", "paralysis", "recently_bedridden",
				"localized_tenderness", "leg_swelling", "calf_swelling",
				"pitting_edema", "collateral_veins", "previous_dvt",
				"alternative_diagnosis",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"low":      "Low probability of DVT; consider D-dimer testing",
					"moderate": "Moderate probability of DVT; D-dimer or ultrasound recommended",
					"high":     "High probability of DVT; proceed to ultrasound",
				},
				domain.LanguageES: {
					"low":      "Probabilidad baja de TVP; considerar dímero D",
					"moderate": "Probabilidad moderada de TVP; se recomienda dímero D o ecografía",
					"high":     "Probabilidad alta de TVP; realizar ecografía",
				},
				domain.LanguagePT: {
					"low":      "Probabilidade baixa de TVP; considerar dímero D",
					"moderate": "Probabilidade moderada de TVP; recomenda-se dímero D ou ultrassom",
					"high":     "Probabilidade alta de TVP; realizar ultrassom",
				},
			},
			Categories: []string{"hematology", "vascular"},
		},
		{
			CodeName: "heart_score",
			Name: domain.LocalizedText{
				domain.LanguageEN: "HEART Score",
				domain.LanguageES: "Escala HEART",
				domain.LanguagePT: "Escala HEART",
			},
			Description: "6-week risk of major adverse cardiac events in chest pain",
			RequiredVariables: []string{
				"suspicious_history", "ekg_findings", "age_risk",
				"risk_factor_count", "initial_troponin",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"low":      "Low risk (0.9-1.7% MACE); discharge with follow-up may be appropriate",
					"moderate": "Moderate risk (12-16.6% MACE); admit for observation",
					"high":     "High risk (50-65% MACE); early invasive strategy indicated",
				},
				domain.LanguageES: {
					"low":      "Riesgo bajo (MACE 0,9-1,7%); puede ser adecuada el alta con seguimiento",
					"moderate": "Riesgo moderado (MACE 12-16,6%); ingresar para observación",
					"high":     "Riesgo alto (MACE 50-65%); indicada estrategia invasiva precoz",
				},
				domain.LanguagePT: {
					"low":      "Risco baixo (MACE 0,9-1,7%); alta com acompanhamento pode ser adequada",
					"moderate": "Risco moderado (MACE 12-16,6%); internar para observação",
					"high":     "Risco alto (MACE 50-65%); estratégia invasiva precoce indicada",
				},
			},
			Categories: []string{"cardiology", "emergency"},
		},
		{
			CodeName: "cts_6",
			Name: domain.LocalizedText{
				domain.LanguageEN: "CTS-6 Score",
				domain.LanguageES: "Escala CTS-6",
				domain.LanguagePT: "Escala CTS-6",
			},
			Description: "Carpal tunnel syndrome clinical diagnosis",
			RequiredVariables: []string{
				"median_numbness", "nocturnal_numbness", "thenar_atrophy",
				"phalen_test", "two_point_discrimination", "tinel_sign",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"low":      "Low likelihood of carpal tunnel syndrome",
					"moderate": "Intermediate likelihood; consider electrodiagnostic studies",
					"high":     "High likelihood of carpal tunnel syndrome",
				},
				domain.LanguageES: {
					"low":      "Probabilidad baja de síndrome del túnel carpiano",
					"moderate": "Probabilidad intermedia; considerar estudios electrodiagnósticos",
					"high":     "Probabilidad alta de síndrome del túnel carpiano",
				},
				domain.LanguagePT: {
					"low":      "Probabilidade baixa de síndrome do túnel do carpo",
					"moderate": "Probabilidade intermediária; considerar estudos eletrodiagnósticos",
					"high":     "Probabilidade alta de síndrome do túnel do carpo",
				},
			},
			Categories: []string{"neurology", "orthopedics"},
		},
		{
			CodeName: "cardiotoxicity_risk",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Cardiotoxicity Risk Score",
				domain.LanguageES: "Escala de riesgo de cardiotoxicidad",
				domain.LanguagePT: "Escala de risco de cardiotoxicidade",
			},
			Description: "Chemotherapy cardiotoxicity risk in cancer patients",
			RequiredVariables: []string{
				"previous_radiotherapy", "aml_diagnosis", "monoclonal_antibodies",
				"baseline_lvef", "baseline_creatinine",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"low":       "Low cardiotoxicity risk; routine monitoring",
					"moderate":  "Moderate cardiotoxicity risk; periodic cardiac surveillance",
					"high":      "High cardiotoxicity risk; close cardiac surveillance and cardiology referral",
					"very_high": "Very high cardiotoxicity risk; cardio-oncology evaluation before treatment",
				},
				domain.LanguageES: {
					"low":       "Riesgo bajo de cardiotoxicidad; seguimiento rutinario",
					"moderate":  "Riesgo moderado; vigilancia cardíaca periódica",
					"high":      "Riesgo alto; vigilancia estrecha y derivación a cardiología",
					"very_high": "Riesgo muy alto; valoración cardio-oncológica antes del tratamiento",
				},
				domain.LanguagePT: {
					"low":       "Risco baixo de cardiotoxicidade; acompanhamento de rotina",
					"moderate":  "Risco moderado; vigilância cardíaca periódica",
					"high":      "Risco alto; vigilância rigorosa e encaminhamento à cardiologia",
					"very_high": "Risco muito alto; avaliação cardio-oncológica antes do tratamento",
				},
			},
			Categories: []string{"oncology", "cardiology"},
		},
		{
			CodeName: "cockcroft_gault",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Cockcroft-Gault Creatinine Clearance",
				domain.LanguageES: "Aclaramiento de creatinina de Cockcroft-Gault",
				domain.LanguagePT: "Clearance de creatinina de Cockcroft-Gault",
			},
			Description: "Estimated creatinine clearance for renal function and drug dosing",
			RequiredVariables: []string{
				"age", "weight", "creatinine", "sex",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"normal":               "Normal or high clearance; no dose adjustment typically needed",
					"mildly_decreased":     "Mildly decreased clearance; check drug-specific recommendations",
					"moderately_decreased": "Moderately decreased clearance; dose adjustment often required",
					"severely_decreased":   "Severely decreased clearance; significant dose adjustment required",
					"kidney_failure":       "Kidney failure; consider dialysis and major dose adjustments",
				},
				domain.LanguageES: {
					"normal":               "Aclaramiento normal o alto; habitualmente no requiere ajuste de dosis",
					"mildly_decreased":     "Aclaramiento levemente reducido; revisar recomendaciones por fármaco",
					"moderately_decreased": "Aclaramiento moderadamente reducido; suele requerir ajuste de dosis",
					"severely_decreased":   "Aclaramiento gravemente reducido; requiere ajuste de dosis importante",
					"kidney_failure":       "Insuficiencia renal; considerar diálisis y ajustes de dosis mayores",
				},
				domain.LanguagePT: {
					"normal":               "Clearance normal ou alto; geralmente sem ajuste de dose",
					"mildly_decreased":     "Clearance levemente reduzido; verificar recomendações por fármaco",
					"moderately_decreased": "Clearance moderadamente reduzido; ajuste de dose frequentemente necessário",
					"severely_decreased":   "Clearance gravemente reduzido; ajuste de dose significativo necessário",
					"kidney_failure":       "Insuficiência renal; considerar diálise e grandes ajustes de dose",
				},
			},
			Categories: []string{"nephrology"},
		},
		{
			CodeName: "calcium_correction",
			Name: domain.LocalizedText{
				domain.LanguageEN: "Albumin-Corrected Calcium",
				domain.LanguageES: "Calcio corregido por albúmina",
				domain.LanguagePT: "Cálcio corrigido pela albumina",
			},
			Description: "Total calcium corrected for abnormal serum albumin",
			RequiredVariables: []string{
				"serum_calcium", "patient_albumin", "normal_albumin",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"hypocalcemia":  "Corrected calcium below reference range; evaluate for hypocalcemia",
					"normal":        "Corrected calcium within reference range",
					"hypercalcemia": "Corrected calcium above reference range; evaluate for hypercalcemia",
				},
				domain.LanguageES: {
					"hypocalcemia":  "Calcio corregido por debajo del rango; evaluar hipocalcemia",
					"normal":        "Calcio corregido dentro del rango de referencia",
					"hypercalcemia": "Calcio corregido por encima del rango; evaluar hipercalcemia",
				},
				domain.LanguagePT: {
					"hypocalcemia":  "Cálcio corrigido abaixo do intervalo; avaliar hipocalcemia",
					"normal":        "Cálcio corrigido dentro do intervalo de referência",
					"hypercalcemia": "Cálcio corrigido acima do intervalo; avaliar hipercalcemia",
				},
			},
			Categories: []string{"endocrinology"},
		},
		{
			CodeName: "meld",
			Name: domain.LocalizedText{
				domain.LanguageEN: "MELD-Na Score",
				domain.LanguageES: "Escala MELD-Na",
				domain.LanguagePT: "Escala MELD-Na",
			},
			Description: "End-stage liver disease severity and transplant priority",
			RequiredVariables: []string{
				"dialysis", "creatinine", "bilirubin", "inr", "sodium",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"low":       "Low severity (1.9% 3-month mortality); monitor closely",
					"moderate":  "Moderate severity (6% 3-month mortality); monitor closely",
					"high":      "High severity (19.6% 3-month mortality); consider transplant referral",
					"very_high": "Very high severity (52.6% 3-month mortality); transplant referral indicated",
					"extreme":   "Extreme severity (71.3% 3-month mortality); urgent transplant evaluation",
				},
				domain.LanguageES: {
					"low":       "Gravedad baja (mortalidad 1,9% a 3 meses); vigilancia estrecha",
					"moderate":  "Gravedad moderada (mortalidad 6% a 3 meses); vigilancia estrecha",
					"high":      "Gravedad alta (mortalidad 19,6% a 3 meses); considerar derivación a trasplante",
					"very_high": "Gravedad muy alta (mortalidad 52,6% a 3 meses); derivación a trasplante indicada",
					"extreme":   "Gravedad extrema (mortalidad 71,3% a 3 meses); evaluación urgente de trasplante",
				},
				domain.LanguagePT: {
					"low":       "Gravidade baixa (mortalidade de 1,9% em 3 meses); monitorar de perto",
					"moderate":  "Gravidade moderada (mortalidade de 6% em 3 meses); monitorar de perto",
					"high":      "Gravidade alta (mortalidade de 19,6% em 3 meses); considerar encaminhamento para transplante",
					"very_high": "Gravidade muito alta (mortalidade de 52,6% em 3 meses); encaminhamento para transplante indicado",
					"extreme":   "Gravidade extrema (mortalidade de 71,3% em 3 meses); avaliação urgente para transplante",
				},
			},
			Categories: []string{"hepatology"},
		},
		{
			CodeName: "prevent",
			Name: domain.LocalizedText{
				domain.LanguageEN: "PREVENT 10-Year CVD Risk",
				domain.LanguageES: "Riesgo cardiovascular a 10 años PREVENT",
				domain.LanguagePT: "Risco cardiovascular em 10 anos PREVENT",
			},
			Description: "10-year total cardiovascular disease risk, AHA PREVENT base model",
			RequiredVariables: []string{
				"sex", "age", "total_cholesterol", "hdl_cholesterol",
				"systolic_bp", "diabetes", "current_smoker", "egfr",
				"on_antihypertensive", "on_statin",
			},
			InterpretationTable: map[string]map[string]string{
				domain.LanguageEN: {
					"low":          "Low risk (<5%); lifestyle modifications, reassess in 4-6 years",
					"borderline":   "Borderline risk (5-7.5%); consider risk-enhancing factors",
					"intermediate": "Intermediate risk (7.5-20%); moderate-intensity statin recommended",
					"high":         "High risk (>=20%); high-intensity statin recommended",
				},
				domain.LanguageES: {
					"low":          "Riesgo bajo (<5%); cambios de estilo de vida, reevaluar en 4-6 años",
					"borderline":   "Riesgo limítrofe (5-7,5%); considerar factores potenciadores de riesgo",
					"intermediate": "Riesgo intermedio (7,5-20%); se recomienda estatina de intensidad moderada",
					"high":         "Riesgo alto (>=20%); se recomienda estatina de alta intensidad",
				},
				domain.LanguagePT: {
					"low":          "Risco baixo (<5%); mudanças de estilo de vida, reavaliar em 4-6 anos",
					"borderline":   "Risco limítrofe (5-7,5%); considerar fatores agravantes de risco",
					"intermediate": "Risco intermediário (7,5-20%); estatina de intensidade moderada recomendada",
					"high":         "Risco alto (>=20%); estatina de alta intensidade recomendada",
				},
			},
			InterpretationPromptHint: "Report the result as a 10-year percentage risk of total cardiovascular disease.",
			Categories:               []string{"cardiology", "preventive"},
		},
	}
}
