package lattice

import (
	"math"

	"github.com/banachtech/patent-valuation/payoff"
	"gonum.org/v1/gonum/mat"
)

// AssetLattice returns A[i][j] = v * u^(j-i) * d^i over the full (n+1)x(n+1)
// grid, row i = down-moves, column j = period. Cells with i > j carry no
// economic meaning but are populated all the same.
func AssetLattice(v float64, p Parameters) *mat.Dense {
	a := mat.NewDense(p.N+1, p.N+1, nil)
	for i := 0; i <= p.N; i++ {
		for j := 0; j <= p.N; j++ {
			a.Set(i, j, v*math.Pow(p.Up, float64(j-i))*math.Pow(p.Down, float64(i)))
		}
	}
	return a
}

// Induct runs backward induction from the terminal column and returns the
// option-value lattice. Only cells with i <= j (and the whole terminal column)
// are written; the rest stay zero.
func Induct(exercise *mat.Dense, p Parameters) *mat.Dense {
	n := p.N
	c := mat.NewDense(n+1, n+1, nil)
	for i := 0; i <= n; i++ {
		c.Set(i, n, exercise.At(i, n))
	}

	for j := n - 1; j >= 0; j-- {
		pj := p.Probs[j]
		for i := 0; i <= j; i++ {
			hold := p.Discount * (pj*c.At(i, j+1) + (1-pj)*c.At(i+1, j+1))
			c.Set(i, j, math.Max(hold, exercise.At(i, j)))
		}
	}
	return c
}

// Request is a single valuation in actual currency units.
type Request struct {
	AssetValue   float64
	ExerciseCost float64
	Maturity     float64
	Volatility   float64
	RiskFree     float64
	CostOfDelay  CostOfDelay
}

// Result holds every intermediate of one valuation.
type Result struct {
	Params   Parameters
	Asset    *mat.Dense
	Exercise *mat.Dense
	Option   *mat.Dense
}

// Value is the root option value C[0][0].
func (r Result) Value() float64 {
	return r.Option.At(0, 0)
}

// Value runs the pipeline with n derived from the maturity.
func Value(req Request) Result {
	return ValueWithPeriods(req, Periods(req.Maturity))
}

// ValueWithPeriods runs derive -> asset lattice -> exercise -> induction.
func ValueWithPeriods(req Request, n int) Result {
	params := Derive(req.Volatility, req.RiskFree, req.Maturity, n, req.CostOfDelay)
	asset := AssetLattice(req.AssetValue, params)
	exercise := payoff.NewExercise(req.ExerciseCost).Lattice(asset)

	return Result{
		Params:   params,
		Asset:    asset,
		Exercise: exercise,
		Option:   Induct(exercise, params),
	}
}
