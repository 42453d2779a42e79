package lattice

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode selects how the cost-of-delay schedule is built.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
)

// MaxMaturity bounds T in years. Each valuation allocates three
// (floor(T)+1)² lattices, and the sensitivity run repeats that 55 times.
const MaxMaturity = 1000

var (
	ErrManualCostOfDelay = errors.New("manual cost of delay values must be valid numbers")
	ErrCostOfDelay       = errors.New("cost of delay must be a valid number")
	ErrMaturity          = fmt.Errorf("time to maturity must be between 0 and %d years", MaxMaturity)
)

// CheckMaturity rejects maturities that are negative, not a number or too
// large to build a lattice for.
func CheckMaturity(t float64) error {
	if !(t >= 0 && t <= MaxMaturity) {
		return fmt.Errorf("%w: %v", ErrMaturity, t)
	}
	return nil
}

// CostOfDelay is either a scalar interpolated to 1.0 at maturity (auto) or an
// explicit per-period sequence (manual). Value is the t=0 value in both modes.
type CostOfDelay struct {
	Mode   Mode
	Value  float64
	Manual []float64
}

// Auto returns an auto-mode cost of delay starting at delta.
func Auto(delta float64) CostOfDelay {
	return CostOfDelay{Mode: ModeAuto, Value: delta}
}

// ParseCostOfDelay reads the raw request field. Any mode other than "auto"
// (or empty) is treated as manual.
func ParseCostOfDelay(mode, raw string) (CostOfDelay, error) {
	if mode == "" || Mode(mode) == ModeAuto {
		delta, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return CostOfDelay{}, fmt.Errorf("%w: %q", ErrCostOfDelay, raw)
		}
		return Auto(delta), nil
	}

	manual := []float64{}
	if raw != "" {
		for _, s := range strings.Split(raw, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return CostOfDelay{}, ErrManualCostOfDelay
			}
			manual = append(manual, v)
		}
	}

	cod := CostOfDelay{Mode: ModeManual, Manual: manual}
	if len(manual) > 0 {
		cod.Value = manual[0]
	}
	return cod, nil
}

// Parameters are the lattice primitives for n periods.
type Parameters struct {
	N        int
	Dt       float64
	Up       float64
	Down     float64
	Discount float64
	Times    []int
	Deltas   []float64
	// Probs has n+1 entries; induction only reads Probs[0..n-1].
	Probs []float64
}

// Periods is the number of lattice periods for a maturity of t years.
func Periods(t float64) int {
	n := int(math.Floor(t))
	if n < 1 {
		return 1
	}
	return n
}

// Derive computes step factors, the discount factor and the per-period
// cost-of-delay and risk-neutral probability schedules.
func Derive(sigma, r, t float64, n int, cod CostOfDelay) Parameters {
	dt := t / float64(n)
	u := math.Exp(sigma * math.Sqrt(dt))
	d := 1 / u

	times := make([]int, n+1)
	for i := range times {
		times[i] = i
	}

	deltas := deltaSchedule(n, cod)

	// u == d only when sigma is zero; probabilities fall back to 0.
	// Values outside [0,1] are kept as computed.
	probs := make([]float64, len(times))
	if u != d {
		for i := range times {
			probs[i] = (math.Exp((r-deltas[i])*dt) - d) / (u - d)
		}
	}

	return Parameters{
		N:        n,
		Dt:       dt,
		Up:       u,
		Down:     d,
		Discount: math.Exp(-r * dt),
		Times:    times,
		Deltas:   deltas,
		Probs:    probs,
	}
}

func deltaSchedule(n int, cod CostOfDelay) []float64 {
	if cod.Mode == ModeManual && len(cod.Manual) == n {
		return manualSchedule(cod.Manual)
	}
	return autoSchedule(n, cod.Value)
}

// manualSchedule always ends at 1.0.
func manualSchedule(manual []float64) []float64 {
	deltas := make([]float64, 0, len(manual)+1)
	deltas = append(deltas, manual...)
	return append(deltas, 1.0)
}

// autoSchedule grows delta geometrically to 1.0 at period n. A non-positive
// delta leaves the schedule at zero, terminal entry included.
func autoSchedule(n int, delta float64) []float64 {
	if n == 0 {
		return []float64{delta}
	}

	deltas := make([]float64, n+1)
	if delta > 0 {
		g := math.Pow(1.0/delta, 1/float64(n)) - 1
		for t := range deltas {
			deltas[t] = delta * math.Pow(1+g, float64(t))
		}
		deltas[n] = 1.0
	}
	return deltas
}
