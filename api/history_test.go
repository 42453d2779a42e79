package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/banachtech/patent-valuation/db/mock"
	db "github.com/banachtech/patent-valuation/db/sqlc"
	"github.com/banachtech/patent-valuation/util"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func randomCalculation(requester string, id int64, createdAt time.Time) db.Calculation {
	return db.Calculation{
		ID:            id,
		Requester:     requester,
		InputParams:   json.RawMessage(`{"Asset Value V": 1000, "Delta Mode": "auto"}`),
		OutputSummary: json.RawMessage(`{"initial_option_value": 254.4237, "sensitivity_summary": 254.4237284499539}`),
		CreatedAt:     createdAt,
	}
}

func TestHistoryAPI(t *testing.T) {
	requester := util.RandomRequester()
	now := time.Date(2024, 3, 1, 9, 30, 15, 0, time.UTC)

	calculations := []db.Calculation{
		randomCalculation(requester, 2, now),
		randomCalculation(requester, 1, now.Add(-time.Hour)),
	}

	testCases := []struct {
		name          string
		setupHeader   func(request *http.Request)
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			setupHeader: func(request *http.Request) {
				request.Header.Set(requesterHeaderKey, requester)
			},
			buildStubs: func(store *mockdb.MockStore) {
				arg := db.ListCalculationsParams{Requester: requester, Limit: 15}
				store.EXPECT().
					ListCalculations(gomock.Any(), gomock.Eq(arg)).
					Times(1).
					Return(calculations, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var entries []historyEntry
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &entries))
				require.Len(t, entries, 2)
				require.Equal(t, int64(2), entries[0].ID)
				require.Equal(t, "2024-03-01 09:30:15", entries[0].Timestamp)
				require.Equal(t, "2024-03-01 08:30:15", entries[1].Timestamp)
				require.Equal(t, 254.4237, entries[0].InitialOptionValue)
				require.JSONEq(t, `{"Asset Value V": 1000, "Delta Mode": "auto"}`, string(entries[0].InputParams))
			},
		},
		{
			name: "EMPTY",
			setupHeader: func(request *http.Request) {
				request.Header.Set(requesterHeaderKey, requester)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCalculations(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Calculation{}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				require.JSONEq(t, `[]`, recorder.Body.String())
			},
		},
		{
			name: "NO_REQUESTER",
			setupHeader: func(request *http.Request) {
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().ListCalculations(gomock.Any(), gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "INTERNAL_SERVER_ERROR",
			setupHeader: func(request *http.Request) {
				request.Header.Set(requesterHeaderKey, requester)
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					ListCalculations(gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, sql.ErrConnDone)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			request, err := http.NewRequest(http.MethodGet, "/v1/history", nil)
			require.NoError(t, err)

			tc.setupHeader(request)
			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestNewHistoryEntryMissingSummary(t *testing.T) {
	calc := randomCalculation("x", 1, time.Now())
	calc.OutputSummary = json.RawMessage(`{}`)

	require.Equal(t, "N/A", newHistoryEntry(calc).InitialOptionValue)
}
