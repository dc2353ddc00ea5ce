package patient

import "fmt"

// BMI computes the body mass index from weight in kilograms and height in
// meters. Both inputs must be positive.
func BMI(weightKg, heightM float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("bmi: weight must be positive, got %g kg", weightKg)
	}
	if heightM <= 0 {
		return 0, fmt.Errorf("bmi: height must be positive, got %g m", heightM)
	}
	return weightKg / (heightM * heightM), nil
}
