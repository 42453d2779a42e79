package valuation

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"testing"

	"github.com/banachtech/patent-valuation/lattice"
	"github.com/banachtech/patent-valuation/sensitivity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(sensitivity.NewAnalyzer(sensitivity.WithWorkers(4)), logger)
}

var reference = Input{
	AssetValue:   1000,
	ExerciseCost: 800,
	Maturity:     5,
	Volatility:   0.3,
	RiskFree:     0.04,
	DeltaMode:    "auto",
	Delta:        "0.05",
}

func TestCompute(t *testing.T) {
	testCases := []struct {
		name  string
		input Input
		check func(t *testing.T, v *Valuation, err error)
	}{
		{
			name:  "REFERENCE_AUTO",
			input: reference,
			check: func(t *testing.T, v *Valuation, err error) {
				require.NoError(t, err)
				out := v.Output()
				require.Equal(t, 254.4237, out.Summary.InitialOptionValue)
				require.Equal(t, []int64{1000, 1350, 1822, 2460, 3320, 4482}, out.Asset[0])
				require.Equal(t, []int64{50, 67, 91, 122, 165, 223}, out.Asset[5])
				require.Len(t, out.Net, 6)
				require.Len(t, out.Option, 6)
				require.Equal(t, []int{0, 1, 2, 3, 4, 5}, out.Schedule.Times)
				require.Equal(t, 1.0, out.Schedule.Deltas[5])
				require.Len(t, out.Schedule.Probabilities, 6)
				require.InDelta(t, 254.4237284499539, out.Sensitivity.BaseValue, 1e-9)
			},
		},
		{
			name: "WORKED_EXAMPLE",
			input: Input{
				AssetValue:   1,
				ExerciseCost: 0.9,
				Maturity:     1,
				DeltaMode:    "auto",
				Delta:        "0",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.NoError(t, err)
				out := v.Output()
				require.Equal(t, 0.1, out.Summary.InitialOptionValue)
				require.Equal(t, [][]int64{{1, 1}, {1, 1}}, out.Asset)
				require.Equal(t, [][]int64{{0, 0}, {0, 0}}, out.Net)
				require.Equal(t, [][]int64{{0, 0}, {0, 0}}, out.Option)
			},
		},
		{
			name: "MANUAL_SCHEDULE",
			input: Input{
				AssetValue:   1000,
				ExerciseCost: 800,
				Maturity:     5,
				Volatility:   0.3,
				RiskFree:     0.04,
				DeltaMode:    "manual",
				Delta:        "0.05, 0.06, 0.07, 0.08, 0.09",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.NoError(t, err)
				require.InDelta(t, 276.1119068179604, v.InitialValue(), 1e-9)
				require.Equal(t, []float64{0.05, 0.06, 0.07, 0.08, 0.09, 1.0}, v.Result.Params.Deltas)
				// sensitivity always runs on the auto schedule of the first entry
				require.InDelta(t, 254.4237284499539, v.Sensitivity.BaseValue, 1e-9)
			},
		},
		{
			name: "MANUAL_NOT_A_NUMBER",
			input: Input{
				AssetValue: 1000, ExerciseCost: 800, Maturity: 5, Volatility: 0.3,
				DeltaMode: "manual",
				Delta:     "0.05,x",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.Nil(t, v)
				require.ErrorIs(t, err, lattice.ErrManualCostOfDelay)
				require.True(t, IsValidation(err))
				require.EqualError(t, err, "manual cost of delay values must be valid numbers")
			},
		},
		{
			name: "AUTO_NOT_A_NUMBER",
			input: Input{
				AssetValue: 1000, ExerciseCost: 800, Maturity: 5, Volatility: 0.3,
				Delta: "abc",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.Nil(t, v)
				require.True(t, IsValidation(err))
			},
		},
		{
			name:  "ZERO_MATURITY",
			input: Input{AssetValue: 1000, ExerciseCost: 800, Volatility: 0.3, RiskFree: 0.04, Delta: "0.05"},
			check: func(t *testing.T, v *Valuation, err error) {
				require.NoError(t, err)
				require.Equal(t, 1, v.Result.Params.N)
				require.Zero(t, v.Result.Params.Dt)
				require.Equal(t, 200.0, v.Output().Summary.InitialOptionValue)
			},
		},
		{
			name:  "ZERO_ASSET_VALUE",
			input: Input{ExerciseCost: 800, Maturity: 5, Volatility: 0.3, RiskFree: 0.04, Delta: "0.05"},
			check: func(t *testing.T, v *Valuation, err error) {
				require.NoError(t, err)
				require.Zero(t, v.InitialValue())
				for _, name := range sensitivity.Parameters {
					require.Zero(t, v.Sensitivity.Spider[name], name)
				}
			},
		},
		{
			name:  "ZERO_EXERCISE_COST",
			input: Input{AssetValue: 1000, Maturity: 5, Volatility: 0.3, RiskFree: 0.04, Delta: "0.05"},
			check: func(t *testing.T, v *Valuation, err error) {
				require.NoError(t, err)
				require.InDelta(t, 1000, v.InitialValue(), 1e-9)
			},
		},
		{
			name: "MATURITY_TOO_LONG",
			input: Input{
				AssetValue: 1000, ExerciseCost: 800, Maturity: 1e5, Volatility: 0.3,
				Delta: "0.05",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.Nil(t, v)
				require.ErrorIs(t, err, lattice.ErrMaturity)
				require.True(t, IsValidation(err))
			},
		},
		{
			name: "MATURITY_NOT_A_NUMBER",
			input: Input{
				AssetValue: 1000, ExerciseCost: 800, Maturity: math.NaN(), Volatility: 0.3,
				Delta: "0.05",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.Nil(t, v)
				require.ErrorIs(t, err, lattice.ErrMaturity)
			},
		},
		{
			name: "NON_FINITE",
			input: Input{
				AssetValue: 1000, ExerciseCost: 800, Maturity: 5, Volatility: math.NaN(),
				Delta: "0.05",
			},
			check: func(t *testing.T, v *Valuation, err error) {
				require.Nil(t, v)
				require.ErrorIs(t, err, ErrComputation)
				require.False(t, IsValidation(err))
			},
		},
	}

	service := newTestService()
	for i := range testCases {
		tc := testCases[i]
		t.Run(tc.name, func(t *testing.T) {
			v, err := service.Compute(context.Background(), tc.input)
			tc.check(t, v, err)
		})
	}
}

func TestComputeCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService().Compute(ctx, reference)
	require.ErrorIs(t, err, ErrComputation)
}

func TestComputeMaturityBound(t *testing.T) {
	in := reference
	in.Maturity = lattice.MaxMaturity
	require.NoError(t, lattice.CheckMaturity(in.Maturity))

	in.Maturity = -1
	_, err := newTestService().Compute(context.Background(), in)
	require.ErrorIs(t, err, lattice.ErrMaturity)
}

func TestHistoryRecord(t *testing.T) {
	service := newTestService()

	t.Run("AUTO", func(t *testing.T) {
		v, err := service.Compute(context.Background(), reference)
		require.NoError(t, err)

		inputs, summary, err := v.HistoryRecord()
		require.NoError(t, err)
		require.JSONEq(t, `{
			"Asset Value V": 1000,
			"Exercise Cost K": 800,
			"Time to Maturity T": 5,
			"Volatility": 0.3,
			"Risk-free Rate r": 0.04,
			"Delta Mode": "auto",
			"Cost of Delay (t=0)": 0.05,
			"Cost of Delay (Manual Mode)": null
		}`, string(inputs))

		var s HistorySummary
		require.NoError(t, json.Unmarshal(summary, &s))
		require.Equal(t, 254.4237, s.InitialOptionValue)
		require.InDelta(t, 254.4237284499539, s.SensitivitySummary, 1e-9)
	})

	t.Run("MANUAL_EMPTY", func(t *testing.T) {
		in := reference
		in.DeltaMode, in.Delta = "manual", ""
		v, err := service.Compute(context.Background(), in)
		require.NoError(t, err)

		h := v.HistoryInputs()
		require.Equal(t, "manual", h.DeltaMode)
		require.Zero(t, h.DeltaT0)
		require.NotNil(t, h.Manual)
		require.Empty(t, h.Manual)

		inputs, _, err := v.HistoryRecord()
		require.NoError(t, err)
		require.Contains(t, string(inputs), `"Cost of Delay (Manual Mode)":[]`)
	})

	t.Run("DEFAULT_MODE", func(t *testing.T) {
		in := reference
		in.DeltaMode = ""
		v, err := service.Compute(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, "auto", v.HistoryInputs().DeltaMode)
	})
}

func TestThousands(t *testing.T) {
	res := lattice.Value(lattice.Request{
		AssetValue:   2500,
		ExerciseCost: 1500,
		Maturity:     1,
		CostOfDelay:  lattice.Auto(0),
	})
	// 2.5 and 1.0 thousands, half to even
	require.Equal(t, [][]int64{{2, 2}, {2, 2}}, Thousands(res.Asset))
	require.Equal(t, [][]int64{{1, 1}, {1, 1}}, Thousands(res.Exercise))
}
