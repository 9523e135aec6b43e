package services

// Recommendations возвращает рекомендации по типу предсказания и уровню
// риска. Чистая таблица: градации <0.3, <0.7 и выше.
func Recommendations(signalType string, probability float64) []string {
	tier := 2
	if probability < 0.3 {
		tier = 0
	} else if probability < 0.7 {
		tier = 1
	}

	switch signalType {
	case SignalTypePreterm:
		return pretermRecommendations[tier]
	case SignalTypeAcidemia:
		return acidemiaRecommendations[tier]
	}
	return []string{}
}

var pretermRecommendations = [3][]string{
	{
		"Continue regular prenatal care visits",
		"Monitor for any changes in symptoms",
		"Maintain a healthy, balanced diet",
		"Get adequate rest and avoid stress",
		"Follow standard pregnancy guidelines",
	},
	{
		"Increase frequency of prenatal visits",
		"Monitor for signs of preterm labor (contractions, back pain, pressure)",
		"Consider cervical length monitoring via ultrasound",
		"Discuss progesterone supplementation with your doctor",
		"Avoid strenuous activities and heavy lifting",
		"Stay hydrated and maintain healthy nutrition",
	},
	{
		"URGENT: Schedule immediate consultation with maternal-fetal medicine specialist",
		"Frequent monitoring and possible bed rest may be recommended",
		"Discuss corticosteroids for fetal lung maturation",
		"Learn signs of preterm labor and when to seek emergency care",
		"Consider hospitalization for close monitoring if recommended",
		"Prepare birth plan for potential preterm delivery",
	},
}

var acidemiaRecommendations = [3][]string{
	{
		"Continue routine fetal monitoring during prenatal visits",
		"Maintain healthy lifestyle and nutrition",
		"Report any decreased fetal movement immediately",
		"Follow standard labor and delivery protocols",
		"No additional interventions needed at this time",
	},
	{
		"Increase frequency of fetal heart rate monitoring",
		"Consider non-stress tests (NST) more frequently",
		"Monitor for signs of fetal distress during labor",
		"Discuss delivery timing with your obstetrician",
		"Be prepared for possible intervention during labor",
	},
	{
		"URGENT: Immediate continuous fetal monitoring required",
		"Discuss delivery options with your medical team urgently",
		"May require cesarean section or assisted delivery",
		"Prepare for potential NICU admission after birth",
		"Close monitoring during labor is essential",
		"Consider early delivery if near term",
	},
}
