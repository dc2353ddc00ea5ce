package organs

import (
	"math"
	"math/rand"
)

// clamp clamps x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// gaussian is the unnormalized Gaussian pulse used for waveform synthesis.
func gaussian(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return math.Exp(-0.5 * d * d)
}

// fluctuation draws a zero-mean normal sample with the given stddev.
// Every organ threads the patient's rng through here so runs are
// reproducible under a fixed seed.
func fluctuation(rng *rand.Rand, stddev float64) float64 {
	return rng.NormFloat64() * stddev
}

// relaxToward moves current toward target at the given fractional rate per
// second, over dt seconds. The step is proportional, so large dt overshoots
// rather than oscillates; callers clamp afterwards.
func relaxToward(current, target, rate, dt float64) float64 {
	return current + (target-current)*rate*dt
}
