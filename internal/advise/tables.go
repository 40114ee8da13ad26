package advise

import "github.com/Rekha-shivaraj/Lab-report-digitization/internal/model"

// authoredEntries builds the authored interpretation/advice table.
// Coverage is deliberately partial: only clinically common (test,
// status) combinations carry tailored text, everything else falls back
// to the generic template.
func authoredEntries() map[key]entry {
	return map[key]entry{
		{"Hemoglobin", model.StatusLow}: {
			interpretation: "Your hemoglobin is {value} {unit}, below the normal range of {range}. This suggests anemia, which can cause tiredness, weakness and shortness of breath.",
			advice: []string{
				"Include iron-rich foods such as leafy greens, beans and dates in your diet.",
				"Pair iron-rich meals with vitamin C sources to improve absorption.",
				"Avoid tea or coffee immediately after meals.",
				"Consult a doctor about iron supplementation and a repeat blood count.",
			},
		},
		{"Hemoglobin", model.StatusHigh}: {
			interpretation: "Your hemoglobin is {value} {unit}, above the normal range of {range}. This can follow dehydration, smoking or certain blood conditions.",
			advice: []string{
				"Drink plenty of water through the day.",
				"Avoid smoking.",
				"Discuss the result with a doctor to rule out underlying causes.",
			},
		},
		{"Total Leucocyte Count", model.StatusLow}: {
			interpretation: "Your white blood cell count is {value} {unit}, below the normal range of {range}. A low count can weaken the body's defence against infection.",
			advice: []string{
				"Practice good hand hygiene and avoid contact with sick people.",
				"Eat a balanced diet with adequate protein.",
				"See a doctor if you develop fever or recurring infections.",
			},
		},
		{"Total Leucocyte Count", model.StatusHigh}: {
			interpretation: "Your white blood cell count is {value} {unit}, above the normal range of {range}. This often points to an infection or inflammation the body is fighting.",
			advice: []string{
				"Rest and stay hydrated.",
				"Watch for fever, pain or other signs of infection.",
				"Consult a doctor to identify the cause.",
			},
		},
		{"Platelet Count", model.StatusLow}: {
			interpretation: "Your platelet count is {value} {unit}, below the normal range of {range}. Low platelets can make bruising and bleeding easier.",
			advice: []string{
				"Avoid activities with a high risk of injury.",
				"Do not take aspirin or similar painkillers without medical advice.",
				"Seek medical review promptly, especially if you notice unusual bruising or bleeding.",
			},
		},
		{"Platelet Count", model.StatusHigh}: {
			interpretation: "Your platelet count is {value} {unit}, above the normal range of {range}. This can be a reaction to infection or inflammation and occasionally signals a blood disorder.",
			advice: []string{
				"Stay well hydrated.",
				"Consult a doctor for a repeat count and further evaluation.",
			},
		},
		{"RBC Count", model.StatusLow}: {
			interpretation: "Your red blood cell count is {value} {unit}, below the normal range of {range}. This often accompanies anemia.",
			advice: []string{
				"Eat iron- and folate-rich foods.",
				"Consult a doctor about further anemia work-up.",
			},
		},
		{"Hematocrit", model.StatusLow}: {
			interpretation: "Your hematocrit is {value}{unit}, below the normal range of {range}. A low packed cell volume commonly reflects anemia or blood loss.",
			advice: []string{
				"Include iron-rich foods in your diet.",
				"Consult a doctor, particularly if you feel fatigued or dizzy.",
			},
		},
		{"Hematocrit", model.StatusHigh}: {
			interpretation: "Your hematocrit is {value}{unit}, above the normal range of {range}. Dehydration is the most common everyday cause.",
			advice: []string{
				"Increase your daily water intake.",
				"Discuss a repeat test with your doctor.",
			},
		},
		{"ESR", model.StatusHigh}: {
			interpretation: "Your ESR is {value} {unit}, above the normal range of {range}. A raised ESR is a non-specific sign of inflammation somewhere in the body.",
			advice: []string{
				"Note any ongoing pain, fever or swelling and report them to a doctor.",
				"A doctor may order follow-up tests to locate the cause.",
			},
		},
		{"Fasting Glucose", model.StatusLow}: {
			interpretation: "Your fasting glucose is {value} {unit}, below the normal range of {range}. Low blood sugar can cause shakiness, sweating and confusion.",
			advice: []string{
				"Eat regular meals and avoid long gaps without food.",
				"Keep a quick sugar source at hand if symptoms occur.",
				"Consult a doctor, especially if you take diabetes medication.",
			},
		},
		{"Fasting Glucose", model.StatusHigh}: {
			interpretation: "Your fasting glucose is {value} {unit}, above the normal range of {range}. This may indicate prediabetes or diabetes and deserves confirmation.",
			advice: []string{
				"Reduce sugar and refined carbohydrates in your diet.",
				"Aim for at least 30 minutes of physical activity most days.",
				"Consult a doctor for a confirmatory test such as HbA1c.",
			},
		},
		{"HbA1c", model.StatusHigh}: {
			interpretation: "Your HbA1c is {value}{unit}, above the normal range of {range}. This reflects elevated average blood sugar over the last three months.",
			advice: []string{
				"Follow a consistent, balanced diet low in refined sugar.",
				"Exercise regularly.",
				"Work with a doctor on a blood sugar management plan.",
			},
		},
		{"Cholesterol", model.StatusHigh}: {
			interpretation: "Your total cholesterol is {value} {unit}, above the normal range of {range}. High cholesterol raises long-term risk of heart disease.",
			advice: []string{
				"Cut down on fried and processed foods.",
				"Choose unsaturated fats such as olive oil, nuts and fish.",
				"Exercise regularly and maintain a healthy weight.",
				"Discuss a full lipid profile with your doctor.",
			},
		},
		{"HDL", model.StatusLow}: {
			interpretation: "Your HDL (good) cholesterol is {value} {unit}, below the desirable level of {range}. Higher HDL helps protect against heart disease.",
			advice: []string{
				"Increase aerobic exercise such as brisk walking.",
				"Include healthy fats like nuts, seeds and oily fish.",
				"Stop smoking if you smoke.",
			},
		},
		{"HDL", model.StatusNormal}: {
			interpretation: "Your HDL (good) cholesterol is {value} {unit}, at or above the desirable level of {low} {unit}. Higher values of this test are protective.",
			advice: []string{
				"Keep up regular physical activity to maintain your HDL level.",
			},
		},
		{"LDL", model.StatusHigh}: {
			interpretation: "Your LDL (bad) cholesterol is {value} {unit}, above the normal range of {range}. Elevated LDL contributes to artery narrowing.",
			advice: []string{
				"Limit saturated fat and avoid trans fats.",
				"Add soluble fibre such as oats and legumes to your diet.",
				"Discuss heart risk assessment with your doctor.",
			},
		},
		{"Triglycerides", model.StatusHigh}: {
			interpretation: "Your triglycerides are {value} {unit}, above the normal range of {range}. High triglycerides often track with diet, weight and alcohol intake.",
			advice: []string{
				"Cut back on sugar, refined carbohydrates and alcohol.",
				"Increase physical activity.",
				"Recheck levels after lifestyle changes, under medical guidance.",
			},
		},
		{"Creatinine", model.StatusHigh}: {
			interpretation: "Your serum creatinine is {value} {unit}, above the normal range of {range}. Raised creatinine can indicate reduced kidney filtration.",
			advice: []string{
				"Stay well hydrated unless a doctor has restricted fluids.",
				"Avoid unnecessary painkillers such as NSAIDs.",
				"Consult a doctor about kidney function testing.",
			},
		},
		{"Blood Urea", model.StatusHigh}: {
			interpretation: "Your blood urea is {value} {unit}, above the normal range of {range}. This can follow dehydration, a high-protein diet or reduced kidney function.",
			advice: []string{
				"Drink adequate water through the day.",
				"Moderate very high protein intake.",
				"Discuss kidney function with your doctor.",
			},
		},
		{"Uric Acid", model.StatusHigh}: {
			interpretation: "Your uric acid is {value} {unit}, above the normal range of {range}. Elevated uric acid can lead to gout and kidney stones.",
			advice: []string{
				"Limit red meat, organ meats and seafood.",
				"Avoid alcohol, particularly beer.",
				"Drink plenty of water.",
			},
		},
		{"TSH", model.StatusLow}: {
			interpretation: "Your TSH is {value} {unit}, below the normal range of {range}. A low TSH may indicate an overactive thyroid.",
			advice: []string{
				"Consult a doctor; thyroid hormone levels (T3/T4) usually need checking.",
				"Report symptoms such as palpitations, weight loss or heat intolerance.",
			},
		},
		{"TSH", model.StatusHigh}: {
			interpretation: "Your TSH is {value} {unit}, above the normal range of {range}. A high TSH may indicate an underactive thyroid.",
			advice: []string{
				"Consult a doctor; thyroid hormone levels (T3/T4) usually need checking.",
				"Report symptoms such as fatigue, weight gain or cold intolerance.",
			},
		},
		{"Vitamin D", model.StatusLow}: {
			interpretation: "Your vitamin D is {value} {unit}, below the normal range of {range}. Deficiency affects bone strength and immunity.",
			advice: []string{
				"Get sensible sun exposure several times a week.",
				"Include vitamin D rich foods such as oily fish and fortified milk.",
				"Ask a doctor about supplementation.",
			},
		},
		{"Vitamin B12", model.StatusLow}: {
			interpretation: "Your vitamin B12 is {value} {unit}, below the normal range of {range}. Deficiency can cause fatigue and nerve symptoms such as tingling.",
			advice: []string{
				"Include eggs, dairy, fish or fortified foods in your diet.",
				"Ask a doctor about B12 supplementation.",
			},
		},
		{"QTc Interval", model.StatusHigh}: {
			interpretation: "Your QTc interval is {value} {unit}, above the normal range of {range}. A prolonged QTc can predispose to abnormal heart rhythms.",
			advice: []string{
				"Share a list of all current medications with your doctor, as several drugs prolong QTc.",
				"Seek prompt cardiology review.",
				"Report palpitations, fainting or dizziness immediately.",
			},
		},
		{"Heart Rate", model.StatusLow}: {
			interpretation: "Your heart rate is {value} {unit}, below the normal range of {range}. A slow pulse can be normal in trained athletes but deserves review if you have symptoms.",
			advice: []string{
				"Note any dizziness, fainting or fatigue.",
				"Consult a doctor if symptoms accompany the slow rate.",
			},
		},
		{"Heart Rate", model.StatusHigh}: {
			interpretation: "Your heart rate is {value} {unit}, above the normal range of {range}. A fast resting pulse can follow fever, anxiety, caffeine or heart conditions.",
			advice: []string{
				"Cut back on caffeine and other stimulants.",
				"Rest and re-measure your pulse.",
				"Consult a doctor if the rate stays elevated at rest.",
			},
		},
	}
}
