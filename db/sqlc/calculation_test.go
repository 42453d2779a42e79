package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/banachtech/patent-valuation/util"
	"github.com/stretchr/testify/require"
)

func randomInputs(t *testing.T) json.RawMessage {
	data, err := json.Marshal(map[string]interface{}{
		"Asset Value V":       util.RandomFloat(100, 5000),
		"Exercise Cost K":     util.RandomFloat(100, 5000),
		"Time to Maturity T":  util.RandomFloat(1, 10),
		"Volatility":          util.RandomFloat(0.1, 0.6),
		"Risk-free Rate r":    util.RandomFloat(0, 0.08),
		"Delta Mode":          util.RandomDeltaMode(),
		"Cost of Delay (t=0)": util.RandomFloat(0, 0.1),
	})
	require.NoError(t, err)
	return data
}

func createRandomCalculation(t *testing.T, requester string) Calculation {
	arg := CreateCalculationParams{
		Requester:     requester,
		InputParams:   randomInputs(t),
		OutputSummary: json.RawMessage(fmt.Sprintf(`{"initial_option_value": %d}`, util.RandomInt(0, 1000))),
	}

	calculation, err := testQueries.CreateCalculation(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, calculation)

	require.NotZero(t, calculation.ID)
	require.Equal(t, arg.Requester, calculation.Requester)
	require.JSONEq(t, string(arg.InputParams), string(calculation.InputParams))
	require.JSONEq(t, string(arg.OutputSummary), string(calculation.OutputSummary))
	require.WithinDuration(t, time.Now(), calculation.CreatedAt, time.Minute)

	return calculation
}

func TestCreateCalculation(t *testing.T) {
	requireDB(t)
	createRandomCalculation(t, util.RandomRequester())
}

func TestCountAndOldest(t *testing.T) {
	requireDB(t)
	requester := util.RandomRequester()

	first := createRandomCalculation(t, requester)
	for i := 0; i < 3; i++ {
		createRandomCalculation(t, requester)
	}

	count, err := testQueries.CountCalculations(context.Background(), requester)
	require.NoError(t, err)
	require.Equal(t, int64(4), count)

	oldest, err := testQueries.GetOldestCalculation(context.Background(), requester)
	require.NoError(t, err)
	require.Equal(t, first.ID, oldest.ID)
}

func TestDeleteCalculation(t *testing.T) {
	requireDB(t)
	requester := util.RandomRequester()
	calculation := createRandomCalculation(t, requester)

	err := testQueries.DeleteCalculation(context.Background(), calculation.ID)
	require.NoError(t, err)

	_, err = testQueries.GetOldestCalculation(context.Background(), requester)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListCalculations(t *testing.T) {
	requireDB(t)
	requester := util.RandomRequester()

	var created []Calculation
	for i := 0; i < 5; i++ {
		created = append(created, createRandomCalculation(t, requester))
	}
	// another requester's rows stay out of the list
	createRandomCalculation(t, util.RandomRequester())

	calculations, err := testQueries.ListCalculations(context.Background(), ListCalculationsParams{
		Requester: requester,
		Limit:     3,
	})
	require.NoError(t, err)
	require.Len(t, calculations, 3)

	for i, c := range calculations {
		require.Equal(t, requester, c.Requester)
		require.Equal(t, created[len(created)-1-i].ID, c.ID)
	}
}
