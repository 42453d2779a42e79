package db

import (
	"context"
	"encoding/json"
)

// SaveCalculationTxParams contains the input parameters of the save transaction
type SaveCalculationTxParams struct {
	Requester     string
	InputParams   json.RawMessage
	OutputSummary json.RawMessage
	Limit         int64
}

// SaveCalculationTxResult is the result of the save transaction
type SaveCalculationTxResult struct {
	Calculation Calculation
	Evicted     []int64
}

// SaveCalculationTx records a calculation for a requester, evicting the
// oldest records first so that at most Limit remain afterwards. Saves for the
// same requester are serialised by a transaction-scoped advisory lock.
func (store *SQLStore) SaveCalculationTx(ctx context.Context, arg SaveCalculationTxParams) (SaveCalculationTxResult, error) {
	var result SaveCalculationTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		if err = q.LockRequester(ctx, arg.Requester); err != nil {
			return err
		}

		count, err := q.CountCalculations(ctx, arg.Requester)
		if err != nil {
			return err
		}

		for ; arg.Limit > 0 && count >= arg.Limit; count-- {
			oldest, err := q.GetOldestCalculation(ctx, arg.Requester)
			if err != nil {
				return err
			}
			if err = q.DeleteCalculation(ctx, oldest.ID); err != nil {
				return err
			}
			result.Evicted = append(result.Evicted, oldest.ID)
		}

		result.Calculation, err = q.CreateCalculation(ctx, CreateCalculationParams{
			Requester:     arg.Requester,
			InputParams:   arg.InputParams,
			OutputSummary: arg.OutputSummary,
		})
		return err
	})

	return result, err
}
