package formula

import "github.com/doeshing/calchub/internal/domain"

// BMI computes body mass index in metric (kg, cm) or imperial (lb, in)
// units and classifies it. Boundaries are inclusive on the upper tier:
// 18.5 is Normal, 25 is Overweight, 30 is Obese.
func BMI(in domain.Inputs) domain.Results {
	weight := Number(in, "weight")
	height := Number(in, "height")
	unit := Text(in, "unit")

	var bmi float64
	if height > 0 {
		if unit == "imperial" {
			bmi = weight / (height * height) * 703
		} else {
			meters := height / 100
			bmi = weight / (meters * meters)
		}
	}

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Normal"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}

	return domain.Results{
		"bmi":      Round1(bmi),
		"category": category,
	}
}

// BMR computes the Harris-Benedict basal metabolic rate (kg, cm, years)
// and the four standard activity-multiplier tiers.
func BMR(in domain.Inputs) domain.Results {
	weight := Number(in, "weight")
	height := Number(in, "height")
	age := Number(in, "age")

	var bmr float64
	if Text(in, "gender") == "female" {
		bmr = 447.593 + 9.247*weight + 3.098*height - 4.330*age
	} else {
		bmr = 88.362 + 13.397*weight + 4.799*height - 5.677*age
	}

	return domain.Results{
		"bmr":       Round2(bmr),
		"sedentary": Round2(bmr * 1.2),
		"light":     Round2(bmr * 1.375),
		"moderate":  Round2(bmr * 1.55),
		"active":    Round2(bmr * 1.725),
	}
}
