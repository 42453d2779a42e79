package sensitivity

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/banachtech/patent-valuation/lattice"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

const (
	AssetValue   = "Asset Value (V)"
	Volatility   = "Volatility"
	Maturity     = "Time to Maturity (T)"
	ExerciseCost = "Exercise Cost (K)"
	CostOfDelay  = "Cost of Delay"
	RiskFree     = "Risk-free Rate (r)"

	sweepPoints = 7
)

// Parameters lists the tornado parameters in report order.
var Parameters = []string{AssetValue, Volatility, Maturity, ExerciseCost, CostOfDelay, RiskFree}

var (
	perturbations = []float64{0.9, 1.1}
	assetFactors  = []float64{0.8, 1.0, 1.2}
	delayFactors  = []float64{0.5, 1.0, 1.5}
)

// Inputs is the base point of the analysis in actual currency units. Delta is
// the representative scalar cost of delay.
type Inputs struct {
	V     float64
	K     float64
	T     float64
	Sigma float64
	Delta float64
	R     float64
}

// Range is one tornado bar.
type Range struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	BaseValue float64 `json:"base_value"`
}

type Series struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
}

type LineChart struct {
	XLabels []float64 `json:"x_labels"`
	Series  []Series  `json:"series"`
}

// put replaces the values of an existing label in place, otherwise appends.
func (lc *LineChart) put(label string, values []float64) {
	for i := range lc.Series {
		if lc.Series[i].Label == label {
			lc.Series[i].Values = values
			return
		}
	}
	lc.Series = append(lc.Series, Series{Label: label, Values: values})
}

type Report struct {
	Tornado           map[string]Range   `json:"tornado"`
	Spider            map[string]float64 `json:"spider"`
	Parameters        []string           `json:"parameters"`
	VolatilityByAsset LineChart          `json:"line_chart_v_sigma"`
	VolatilityByDelay LineChart          `json:"line_chart_delta_sigma"`
	BaseValue         float64            `json:"base_option_value"`
}

// PointValue values a single point in thousands. The period count is always
// recomputed from T, so perturbing T also changes the lattice resolution.
func PointValue(in Inputs) float64 {
	n := lattice.Periods(in.T)
	res := lattice.ValueWithPeriods(lattice.Request{
		AssetValue:   in.V,
		ExerciseCost: in.K,
		Maturity:     in.T,
		Volatility:   in.Sigma,
		RiskFree:     in.R,
		CostOfDelay:  lattice.Auto(in.Delta),
	}, n)
	return res.Value() / 1000
}

// perturb returns in with the named parameter scaled by factor.
func perturb(in Inputs, name string, factor float64) Inputs {
	switch name {
	case AssetValue:
		in.V *= factor
	case Volatility:
		in.Sigma *= factor
	case Maturity:
		in.T *= factor
	case ExerciseCost:
		in.K *= factor
	case CostOfDelay:
		in.Delta *= factor
	case RiskFree:
		in.R *= factor
	}
	return in
}

type Option func(*Analyzer)

// WithWorkers sets how many valuations run concurrently.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithObserver registers a hook called once per completed valuation.
func WithObserver(fn func()) Option {
	return func(a *Analyzer) {
		a.observe = fn
	}
}

// Analyzer fans a base point out into the tornado, spider and line-chart
// valuations.
type Analyzer struct {
	workers int
	observe func()
	value   func(Inputs) float64
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{workers: 1, value: PointValue}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Evaluations is the number of valuations one Analyze call performs.
func Evaluations() int {
	return 1 + len(Parameters)*len(perturbations) + sweepPoints*(len(assetFactors)+len(delayFactors))
}

// Analyze builds the full sensitivity report around base. A valuation that
// panics fails the whole report.
func (a *Analyzer) Analyze(base Inputs) (*Report, error) {
	sigmas := Sweep(base.Sigma)

	jobs := []Inputs{base}
	for _, name := range Parameters {
		for _, f := range perturbations {
			jobs = append(jobs, perturb(base, name, f))
		}
	}
	for _, f := range assetFactors {
		for _, s := range sigmas {
			in := base
			in.V, in.Sigma = base.V*f, s
			jobs = append(jobs, in)
		}
	}
	for _, f := range delayFactors {
		for _, s := range sigmas {
			in := base
			in.Delta, in.Sigma = base.Delta*f, s
			jobs = append(jobs, in)
		}
	}

	values, err := a.run(jobs)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Tornado:    make(map[string]Range, len(Parameters)),
		Spider:     make(map[string]float64, len(Parameters)),
		Parameters: append([]string(nil), Parameters...),
		BaseValue:  values[0],
	}

	k := 1
	for _, name := range Parameters {
		lo, hi := floats.Min(values[k:k+2]), floats.Max(values[k:k+2])
		k += 2

		report.Tornado[name] = Range{Min: lo, Max: hi, BaseValue: report.BaseValue}
		report.Spider[name] = spider(lo, hi, report.BaseValue)
	}

	xLabels := make([]float64, len(sigmas))
	for i, s := range sigmas {
		xLabels[i] = Round(s, 3)
	}
	report.VolatilityByAsset.XLabels = xLabels
	report.VolatilityByDelay.XLabels = xLabels

	for _, f := range assetFactors {
		v := base.V * f
		label := fmt.Sprintf("V=%dk", int64(math.RoundToEven(v/1000)))
		report.VolatilityByAsset.put(label, roundAll(values[k:k+sweepPoints], 2))
		k += sweepPoints
	}
	for _, f := range delayFactors {
		d := base.Delta * f
		label := fmt.Sprintf("Cost of Delay=%s%%", formatFixed(d*100, 1))
		report.VolatilityByDelay.put(label, roundAll(values[k:k+sweepPoints], 2))
		k += sweepPoints
	}

	return report, nil
}

// run values every job into its own slot.
func (a *Analyzer) run(jobs []Inputs) ([]float64, error) {
	values := make([]float64, len(jobs))
	errs := make([]error, len(jobs))

	if a.workers <= 1 {
		for i := range jobs {
			values[i], errs[i] = a.evaluate(jobs[i])
			a.done()
		}
		return values, firstError(errs)
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, a.workers)
	for i := range jobs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			values[i], errs[i] = a.evaluate(jobs[i])
			a.done()
		}(i)
	}
	wg.Wait()
	return values, firstError(errs)
}

// evaluate values one point, turning a panic into an error so that it never
// escapes a worker goroutine.
func (a *Analyzer) evaluate(in Inputs) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sensitivity point %+v: %v", in, r)
		}
	}()
	return a.value(in), nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) done() {
	if a.observe != nil {
		a.observe()
	}
}

// spider is the largest move away from base as a percentage of base.
func spider(lo, hi, base float64) float64 {
	if base == 0 {
		return 0
	}
	change := math.Max(math.Abs(hi-base), math.Abs(lo-base))
	return Round(change/base*100, 2)
}

// Sweep returns the volatility axis: 7 evenly spaced points from 0.5σ to 1.5σ.
func Sweep(sigma float64) []float64 {
	lo, hi := 0.5*sigma, 1.5*sigma
	xs := floats.Span(make([]float64, sweepPoints), lo, hi)
	xs[len(xs)-1] = hi
	return xs
}

// Round rounds the exact binary value of v to the given number of decimal
// places, ties to even. 2.675 is stored below the tie and rounds to 2.67.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return fixed(v, places).InexactFloat64()
}

// fixed relies on strconv formatting the exact binary expansion, which rounds
// true ties to even.
func fixed(v float64, places int32) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', int(places), 64))
}

func formatFixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fixed(v, places).StringFixed(places)
}

func roundAll(vs []float64, places int32) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = Round(v, places)
	}
	return out
}
