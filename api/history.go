package api

import (
	"encoding/json"
	"net/http"

	db "github.com/banachtech/patent-valuation/db/sqlc"
	"github.com/gin-gonic/gin"
)

const Layout = "2006-01-02 15:04:05"

type historyEntry struct {
	ID                 int64           `json:"id"`
	Timestamp          string          `json:"timestamp"`
	InputParams        json.RawMessage `json:"input_params"`
	InitialOptionValue interface{}     `json:"initial_option_value"`
}

func newHistoryEntry(calc db.Calculation) historyEntry {
	entry := historyEntry{
		ID:                 calc.ID,
		Timestamp:          calc.CreatedAt.Format(Layout),
		InputParams:        calc.InputParams,
		InitialOptionValue: "N/A",
	}

	var summary map[string]interface{}
	if err := json.Unmarshal(calc.OutputSummary, &summary); err == nil {
		if v, ok := summary["initial_option_value"]; ok {
			entry.InitialOptionValue = v
		}
	}
	return entry
}

func (server *Server) history(c *gin.Context) {
	calculations, err := server.store.ListCalculations(c, db.ListCalculationsParams{
		Requester: c.GetString(requesterKey),
		Limit:     server.config.HistoryLimit,
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	entries := make([]historyEntry, 0, len(calculations))
	for _, calc := range calculations {
		entries = append(entries, newHistoryEntry(calc))
	}
	c.JSON(http.StatusOK, entries)
}
