package valuation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/banachtech/patent-valuation/lattice"
	"github.com/banachtech/patent-valuation/sensitivity"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"
)

// ErrComputation wraps any failure inside the valuation pipeline.
var ErrComputation = errors.New("valuation failed")

// Input is a valuation request as entered: V and K in thousands, Delta is the
// raw cost-of-delay field (a scalar in auto mode, a comma list otherwise).
type Input struct {
	AssetValue   float64
	ExerciseCost float64
	Maturity     float64
	Volatility   float64
	RiskFree     float64
	DeltaMode    string
	Delta        string
}

// IsValidation reports whether err was caused by malformed input rather than
// by the computation.
func IsValidation(err error) bool {
	return errors.Is(err, lattice.ErrCostOfDelay) ||
		errors.Is(err, lattice.ErrManualCostOfDelay) ||
		errors.Is(err, lattice.ErrMaturity)
}

// Valuation is one completed calculation with its raw lattices.
type Valuation struct {
	Input       Input
	CostOfDelay lattice.CostOfDelay
	Result      lattice.Result
	Sensitivity *sensitivity.Report
}

// Service runs the lattice valuation and its sensitivity analysis.
type Service struct {
	analyzer *sensitivity.Analyzer
	logger   *logrus.Logger
}

func NewService(analyzer *sensitivity.Analyzer, logger *logrus.Logger) *Service {
	return &Service{analyzer: analyzer, logger: logger}
}

// Compute values in and builds its sensitivity report. Input errors are
// returned as is; everything else is wrapped in ErrComputation.
func (s *Service) Compute(ctx context.Context, in Input) (v *Valuation, err error) {
	if err = lattice.CheckMaturity(in.Maturity); err != nil {
		return nil, err
	}
	cod, err := lattice.ParseCostOfDelay(in.DeltaMode, in.Delta)
	if err != nil {
		return nil, err
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComputation, err)
	}

	fields := logrus.Fields{
		"V":          in.AssetValue,
		"K":          in.ExerciseCost,
		"T":          in.Maturity,
		"sigma":      in.Volatility,
		"r":          in.RiskFree,
		"delta_mode": cod.Mode,
		"delta":      in.Delta,
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(fields).Errorf("valuation panicked: %v", r)
			v, err = nil, fmt.Errorf("%w: %v", ErrComputation, r)
		}
	}()

	start := time.Now()
	req := lattice.Request{
		AssetValue:   in.AssetValue * 1000,
		ExerciseCost: in.ExerciseCost * 1000,
		Maturity:     in.Maturity,
		Volatility:   in.Volatility,
		RiskFree:     in.RiskFree,
		CostOfDelay:  cod,
	}
	res := lattice.Value(req)
	if c0 := res.Value(); math.IsNaN(c0) || math.IsInf(c0, 0) {
		s.logger.WithFields(fields).Error("valuation produced a non-finite option value")
		return nil, fmt.Errorf("%w: option value is %v", ErrComputation, c0)
	}

	report, err := s.analyzer.Analyze(sensitivity.Inputs{
		V:     req.AssetValue,
		K:     req.ExerciseCost,
		T:     req.Maturity,
		Sigma: req.Volatility,
		Delta: cod.Value,
		R:     req.RiskFree,
	})
	if err != nil {
		s.logger.WithFields(fields).WithError(err).Error("sensitivity analysis failed")
		return nil, fmt.Errorf("%w: %v", ErrComputation, err)
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrComputation, err)
	}

	s.logger.WithFields(fields).WithFields(logrus.Fields{
		"periods":  res.Params.N,
		"c0":       res.Value(),
		"duration": time.Since(start),
	}).Debug("valuation complete")

	return &Valuation{
		Input:       in,
		CostOfDelay: cod,
		Result:      res,
		Sensitivity: report,
	}, nil
}

// InitialValue is C[0][0] in thousands, unrounded.
func (v *Valuation) InitialValue() float64 {
	return v.Result.Value() / 1000
}

// Thousands scales a lattice to thousands and rounds each cell half to even.
func Thousands(m *mat.Dense) [][]int64 {
	r, c := m.Dims()
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			out[i][j] = int64(math.RoundToEven(m.At(i, j) / 1000))
		}
	}
	return out
}
