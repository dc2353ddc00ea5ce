package organs

// Blood is the shared compartment every organ reads and mutates during its
// update. It is owned by the Patient; organs clamp only the fields they own.
type Blood struct {
	Systolic           float64 // mmHg
	Diastolic          float64 // mmHg
	OxygenSaturation   float64 // %, 0-100
	CO2PartialPressure float64 // mmHg
	Glucose            float64 // mg/dL
	Angiotensin        float64 // a.u.
	Toxins             float64 // a.u.
}

// NewBlood returns blood at healthy resting defaults.
func NewBlood() Blood {
	return Blood{
		Systolic:           110.0,
		Diastolic:          75.0,
		OxygenSaturation:   98.0,
		CO2PartialPressure: 40.0,
		Glucose:            90.0,
		Angiotensin:        1.0,
		Toxins:             0.0,
	}
}

// MeanArterialPressure estimates MAP as diastolic + pulse pressure / 3.
func (b *Blood) MeanArterialPressure() float64 {
	return b.Diastolic + (b.Systolic-b.Diastolic)/3.0
}
