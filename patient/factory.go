package patient

import (
	"time"

	"github.com/pthm-cable/vitals/config"
	"github.com/pthm-cable/vitals/organs"
)

// updateOrder is the fixed organ update order. Organs later in the order
// see upstream organs' state as of the current tick; preserving this order
// keeps single-step coupling deterministic.
var updateOrder = []organs.Kind{
	organs.KindHeart,
	organs.KindLungs,
	organs.KindBrain,
	organs.KindLiver,
	organs.KindKidneys,
	organs.KindBladder,
	organs.KindStomach,
	organs.KindIntestines,
	organs.KindGallbladder,
	organs.KindPancreas,
	organs.KindEsophagus,
	organs.KindSpleen,
	organs.KindSpinalCord,
}

// NewPatient builds a patient with the full thirteen-organ roster, blood at
// the configured baselines and the configured autonomic gains.
func NewPatient(cfg *config.Config) *Patient {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	blood := organs.Blood{
		Systolic:           cfg.Blood.Systolic,
		Diastolic:          cfg.Blood.Diastolic,
		OxygenSaturation:   cfg.Blood.OxygenSaturation,
		CO2PartialPressure: cfg.Blood.CO2PartialPressure,
		Glucose:            cfg.Blood.Glucose,
		Angiotensin:        cfg.Blood.Angiotensin,
		Toxins:             cfg.Blood.Toxins,
	}

	p := NewEmpty(blood, seed)

	gains := organs.AutonomicGains{
		CO2Drive:    cfg.Autonomic.CO2Drive,
		O2Drive:     cfg.Autonomic.O2Drive,
		RespSpeed:   cfg.Autonomic.RespSpeed,
		BaroGain:    cfg.Autonomic.BaroGain,
		CardioSpeed: cfg.Autonomic.CardioSpeed,
	}

	for _, kind := range updateOrder {
		switch kind {
		case organs.KindHeart:
			p.AttachHeart(cfg.Heart.NumLeads)
		case organs.KindLungs:
			p.AttachLungs()
		case organs.KindBrain:
			p.AttachBrain(gains)
		case organs.KindLiver:
			p.AttachLiver()
		case organs.KindKidneys:
			p.AttachKidneys()
		case organs.KindBladder:
			p.AttachBladder()
		case organs.KindStomach:
			p.AttachStomach()
		case organs.KindIntestines:
			p.AttachIntestines()
		case organs.KindGallbladder:
			p.AttachGallbladder()
		case organs.KindPancreas:
			p.AttachPancreas()
		case organs.KindEsophagus:
			p.AttachEsophagus()
		case organs.KindSpleen:
			p.AttachSpleen()
		case organs.KindSpinalCord:
			p.AttachSpinalCord()
		}
	}
	return p
}
