package payoff

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Exercise is the payoff of committing the investment: pay Cost, receive the
// asset.
type Exercise struct {
	Cost float64
}

func NewExercise(cost float64) *Exercise {
	return &Exercise{Cost: cost}
}

// Payout is the intrinsic value max(asset - cost, 0).
func (e *Exercise) Payout(asset float64) float64 {
	return math.Max(asset-e.Cost, 0)
}

// Lattice applies Payout to every cell of the asset lattice.
func (e *Exercise) Lattice(asset *mat.Dense) *mat.Dense {
	r, c := asset.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 {
		return e.Payout(v)
	}, asset)
	return out
}
