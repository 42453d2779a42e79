package valuation

import (
	"encoding/json"

	"github.com/banachtech/patent-valuation/lattice"
	"github.com/banachtech/patent-valuation/sensitivity"
)

type Summary struct {
	InitialOptionValue float64 `json:"initial_option_value"`
}

type Schedule struct {
	Times         []int     `json:"times"`
	Deltas        []float64 `json:"deltas"`
	Probabilities []float64 `json:"probabilities"`
}

// Output is the display form of a valuation.
type Output struct {
	Summary     Summary             `json:"summary"`
	Asset       [][]int64           `json:"asset"`
	Net         [][]int64           `json:"net"`
	Option      [][]int64           `json:"option"`
	Schedule    Schedule            `json:"schedule"`
	Sensitivity *sensitivity.Report `json:"sensitivity"`
}

func (v *Valuation) Output() Output {
	p := v.Result.Params
	return Output{
		Summary: Summary{
			InitialOptionValue: sensitivity.Round(v.InitialValue(), 4),
		},
		Asset:  Thousands(v.Result.Asset),
		Net:    Thousands(v.Result.Exercise),
		Option: Thousands(v.Result.Option),
		Schedule: Schedule{
			Times:         p.Times,
			Deltas:        p.Deltas,
			Probabilities: p.Probs,
		},
		Sensitivity: v.Sensitivity,
	}
}

// HistoryInputs is the stored form of the request.
type HistoryInputs struct {
	AssetValue   float64   `json:"Asset Value V"`
	ExerciseCost float64   `json:"Exercise Cost K"`
	Maturity     float64   `json:"Time to Maturity T"`
	Volatility   float64   `json:"Volatility"`
	RiskFree     float64   `json:"Risk-free Rate r"`
	DeltaMode    string    `json:"Delta Mode"`
	DeltaT0      float64   `json:"Cost of Delay (t=0)"`
	Manual       []float64 `json:"Cost of Delay (Manual Mode)"`
}

// HistorySummary is the stored form of the result.
type HistorySummary struct {
	InitialOptionValue float64 `json:"initial_option_value"`
	SensitivitySummary float64 `json:"sensitivity_summary"`
}

func (v *Valuation) HistoryInputs() HistoryInputs {
	mode := v.Input.DeltaMode
	if mode == "" {
		mode = string(lattice.ModeAuto)
	}
	h := HistoryInputs{
		AssetValue:   v.Input.AssetValue,
		ExerciseCost: v.Input.ExerciseCost,
		Maturity:     v.Input.Maturity,
		Volatility:   v.Input.Volatility,
		RiskFree:     v.Input.RiskFree,
		DeltaMode:    mode,
		DeltaT0:      v.CostOfDelay.Value,
	}
	if v.CostOfDelay.Mode == lattice.ModeManual {
		h.Manual = v.CostOfDelay.Manual
	}
	return h
}

func (v *Valuation) HistorySummary() HistorySummary {
	return HistorySummary{
		InitialOptionValue: sensitivity.Round(v.InitialValue(), 4),
		SensitivitySummary: v.Sensitivity.BaseValue,
	}
}

// HistoryRecord returns the two JSON blobs persisted for a calculation.
func (v *Valuation) HistoryRecord() (inputs, summary json.RawMessage, err error) {
	inputs, err = json.Marshal(v.HistoryInputs())
	if err != nil {
		return
	}
	summary, err = json.Marshal(v.HistorySummary())
	return
}
