package decay

import (
	"fmt"
	"math"
)

// N0 is the initial atom count of the sample.
const N0 = 1.00e15

// SecondsPerDay converts second-based sample times to days.
const SecondsPerDay = 24 * 3600

// Isotope is a variant of a chemical element.
type Isotope struct {
	// Usually described as "X" in chemistry.
	Symbol string

	// Atomic number is only number of protons. Described as "Z"
	Number int

	// Mass is number of protons + neutrons. Described as "A".
	Mass int

	// HalfLife is the time for half of a sample to decay, in seconds.
	HalfLife float64

	// Lambda is the decay constant, in s⁻¹. Carried as a literal so the
	// analytic curve matches the simulation output exactly; it agrees with
	// ln2/HalfLife.
	Lambda float64
}

// Rn222 is the Radon-222 isotope.
func Rn222() *Isotope {
	return &Isotope{
		Symbol:   "Rn",
		Number:   86,
		Mass:     222,
		HalfLife: 3.8235 * SecondsPerDay,
		Lambda:   2.0982e-06,
	}
}

// Name is symbol of an isotope + it's atomic mass number
func (iso *Isotope) Name() string {
	return fmt.Sprintf("%s-%d", iso.Symbol, iso.Mass)
}

// Analytic evaluates the exact decay law N(t) = n0 * e^(-λt) at every
// sample time, in seconds.
func (iso *Isotope) Analytic(n0 float64, times []float64) []float64 {
	ns := make([]float64, len(times))
	for i, t := range times {
		ns[i] = n0 * math.Exp(-iso.Lambda*t)
	}
	return ns
}

// Run is the sampled output of one Euler simulation of the decay at a
// fixed step size.
type Run struct {
	// Dt is the simulation step size in seconds.
	Dt float64

	// Counts is the atom count at each sample time.
	Counts []float64

	// Errors is the relative error of Counts against the analytic
	// solution at each sample time, in percent.
	Errors []float64
}

// Label names a run by its step size in hours.
func (r Run) Label() string {
	return fmt.Sprintf("dt = %.2f h", r.Dt/3600)
}

type Runs []Run

// Times returns the sample times of the simulation output, in seconds.
// Eleven uniform samples spanning about 15.3 days.
func Times() []float64 {
	return []float64{
		0.00, 132140.16, 264280.32, 396420.48, 528560.64,
		660700.80, 792840.96, 924981.12, 1057121.28, 1189261.44, 1321401.60,
	}
}

// Days converts second-based sample times to days.
func Days(times []float64) []float64 {
	days := make([]float64, len(times))
	for i, t := range times {
		days[i] = t / SecondsPerDay
	}
	return days
}

// Results returns the five simulation runs, coarsest step first. The
// values are the recorded output of the Euler simulations, not computed
// here.
func Results() Runs {
	return Runs{
		{
			Dt: 33035,
			Counts: []float64{
				1.000e+15, 7.503e+14, 5.629e+14, 4.223e+14, 3.168e+14,
				2.377e+14, 1.783e+14, 1.338e+14, 1.004e+14, 7.532e+13, 5.651e+13,
			},
			Errors: []float64{
				0.0000, 1.0027, 1.9953, 2.9780, 3.9508,
				4.9139, 5.8673, 6.8112, 7.7456, 8.6706, 9.5864,
			},
		},
		{
			Dt: 16518,
			Counts: []float64{
				1.000e+15, 7.541e+14, 5.687e+14, 4.289e+14, 3.235e+14,
				2.439e+14, 1.840e+14, 1.387e+14, 1.046e+14, 7.890e+13, 5.950e+13,
			},
			Errors: []float64{
				0.0000, 0.4906, 0.9789, 1.4647, 1.9482,
				2.4293, 2.9080, 3.3844, 3.8584, 4.3301, 4.7995,
			},
		},
		{
			Dt: 6607,
			Counts: []float64{
				1.000e+15, 7.564e+14, 5.721e+14, 4.327e+14, 3.273e+14,
				2.476e+14, 1.873e+14, 1.417e+14, 1.071e+14, 8.104e+13, 6.130e+13,
			},
			Errors: []float64{
				0.0000, 0.1938, 0.3872, 0.5802, 0.7729,
				0.9652, 1.1571, 1.3487, 1.5398, 1.7306, 1.9211,
			},
		},
		{
			Dt: 3304,
			Counts: []float64{
				1.000e+15, 7.571e+14, 5.732e+14, 4.340e+14, 3.286e+14,
				2.488e+14, 1.884e+14, 1.426e+14, 1.080e+14, 8.176e+13, 6.190e+13,
			},
			Errors: []float64{
				0.0000, 0.0965, 0.1929, 0.2892, 0.3854,
				0.4815, 0.5775, 0.6735, 0.7693, 0.8651, 0.9607,
			},
		},
		{
			Dt: 1652,
			Counts: []float64{
				1.000e+15, 7.575e+14, 5.738e+14, 4.346e+14, 3.292e+14,
				2.494e+14, 1.889e+14, 1.431e+14, 1.084e+14, 8.211e+13, 6.220e+13,
			},
			Errors: []float64{
				0.0000, 0.0481, 0.0963, 0.1444, 0.1924,
				0.2405, 0.2885, 0.3365, 0.3845, 0.4325, 0.4804,
			},
		},
	}
}
