package catalog

import "github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"

// Builtin returns the built-in test catalog. Synonyms are listed in
// precedence order: the first synonym that yields a valid number wins.
// Entries are freshly allocated so callers can edit their copy.
func Builtin() []model.TestDefinition {
	defs := []model.TestDefinition{
		{
			Name:         "Hemoglobin",
			Synonyms:     []string{"hemoglobin", "haemoglobin", "hgb", "hb"},
			Unit:         "g/dL",
			LowNormal:    12,
			HighNormal:   model.NewBound(17),
			PlausibleMin: 3,
			PlausibleMax: 25,
		},
		{
			Name:         "Total Leucocyte Count",
			Synonyms:     []string{"total leucocyte count", "wbc count", "white blood cell count", "wbc"},
			Unit:         "/cumm",
			LowNormal:    4000,
			HighNormal:   model.NewBound(11000),
			PlausibleMin: 500,
			PlausibleMax: 100000,
		},
		{
			Name:         "Platelet Count",
			Synonyms:     []string{"platelet count", "platelets", "plt"},
			Unit:         "/cumm",
			LowNormal:    150000,
			HighNormal:   model.NewBound(450000),
			PlausibleMin: 10000,
			PlausibleMax: 2000000,
		},
		{
			Name:         "RBC Count",
			Synonyms:     []string{"rbc count", "red blood cell count", "rbc"},
			Unit:         "million/cumm",
			LowNormal:    4.5,
			HighNormal:   model.NewBound(6.2),
			PlausibleMin: 0.5,
			PlausibleMax: 20,
		},
		{
			Name:         "Hematocrit",
			Synonyms:     []string{"hematocrit", "haematocrit", "packed cell volume", "pcv"},
			Unit:         "%",
			LowNormal:    36,
			HighNormal:   model.NewBound(50),
			PlausibleMin: 10,
			PlausibleMax: 80,
		},
		{
			Name:         "ESR",
			Synonyms:     []string{"erythrocyte sedimentation rate", "esr"},
			Unit:         "mm/hr",
			LowNormal:    0,
			HighNormal:   model.NewBound(20),
			PlausibleMin: 0,
			PlausibleMax: 150,
		},
		{
			Name:         "Fasting Glucose",
			Synonyms:     []string{"fasting blood sugar", "fasting glucose", "glucose fasting", "fbs"},
			Unit:         "mg/dL",
			LowNormal:    70,
			HighNormal:   model.NewBound(110),
			PlausibleMin: 20,
			PlausibleMax: 1000,
		},
		{
			Name:         "HbA1c",
			Synonyms:     []string{"hba1c", "glycated hemoglobin", "glycosylated hemoglobin"},
			Unit:         "%",
			LowNormal:    4,
			HighNormal:   model.NewBound(5.6),
			PlausibleMin: 2,
			PlausibleMax: 25,
		},
		{
			Name:         "Cholesterol",
			Synonyms:     []string{"total cholesterol", "serum cholesterol", "cholesterol"},
			Unit:         "mg/dL",
			LowNormal:    125,
			HighNormal:   model.NewBound(200),
			PlausibleMin: 50,
			PlausibleMax: 1000,
		},
		{
			Name:         "HDL",
			Synonyms:     []string{"hdl cholesterol", "hdl-c", "hdl"},
			Unit:         "mg/dL",
			LowNormal:    40,
			HighNormal:   model.NoUpperLimit(),
			PlausibleMin: 10,
			PlausibleMax: 150,
		},
		{
			Name:         "LDL",
			Synonyms:     []string{"ldl cholesterol", "ldl-c", "ldl"},
			Unit:         "mg/dL",
			LowNormal:    50,
			HighNormal:   model.NewBound(130),
			PlausibleMin: 10,
			PlausibleMax: 500,
		},
		{
			Name:         "Triglycerides",
			Synonyms:     []string{"triglycerides", "tgl"},
			Unit:         "mg/dL",
			LowNormal:    50,
			HighNormal:   model.NewBound(150),
			PlausibleMin: 20,
			PlausibleMax: 2000,
		},
		{
			Name:         "Creatinine",
			Synonyms:     []string{"serum creatinine", "creatinine"},
			Unit:         "mg/dL",
			LowNormal:    0.6,
			HighNormal:   model.NewBound(1.3),
			PlausibleMin: 0.1,
			PlausibleMax: 20,
		},
		{
			Name:         "Blood Urea",
			Synonyms:     []string{"blood urea", "urea"},
			Unit:         "mg/dL",
			LowNormal:    20,
			HighNormal:   model.NewBound(40),
			PlausibleMin: 5,
			PlausibleMax: 300,
		},
		{
			Name:         "Uric Acid",
			Synonyms:     []string{"uric acid"},
			Unit:         "mg/dL",
			LowNormal:    3.5,
			HighNormal:   model.NewBound(7.2),
			PlausibleMin: 0.5,
			PlausibleMax: 25,
		},
		{
			Name:         "TSH",
			Synonyms:     []string{"thyroid stimulating hormone", "tsh"},
			Unit:         "µIU/mL",
			LowNormal:    0.4,
			HighNormal:   model.NewBound(4.0),
			PlausibleMin: 0.01,
			PlausibleMax: 150,
		},
		{
			Name:         "Vitamin D",
			Synonyms:     []string{"25-oh vitamin d", "vitamin d"},
			Unit:         "ng/mL",
			LowNormal:    30,
			HighNormal:   model.NewBound(100),
			PlausibleMin: 1,
			PlausibleMax: 300,
		},
		{
			Name:         "Vitamin B12",
			Synonyms:     []string{"vitamin b12", "vit b12"},
			Unit:         "pg/mL",
			LowNormal:    200,
			HighNormal:   model.NewBound(900),
			PlausibleMin: 20,
			PlausibleMax: 5000,
		},
		{
			Name:         "QTc Interval",
			Synonyms:     []string{"qtc interval", "qtc"},
			Unit:         "ms",
			LowNormal:    350,
			HighNormal:   model.NewBound(460),
			PlausibleMin: 200,
			PlausibleMax: 800,
		},
		{
			Name:         "Heart Rate",
			Synonyms:     []string{"heart rate", "pulse rate", "pulse"},
			Unit:         "bpm",
			LowNormal:    60,
			HighNormal:   model.NewBound(100),
			PlausibleMin: 20,
			PlausibleMax: 300,
		},
	}

	return defs
}
