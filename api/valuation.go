package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	db "github.com/banachtech/patent-valuation/db/sqlc"
	"github.com/banachtech/patent-valuation/export"
	"github.com/banachtech/patent-valuation/valuation"
	"github.com/gin-gonic/gin"
)

// deltaField accepts the cost of delay as a JSON number or string.
type deltaField string

func (d *deltaField) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = deltaField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("delta must be a number or a string")
	}
	*d = deltaField(n.String())
	return nil
}

type valuationRequest struct {
	AssetValue   *float64   `json:"V" binding:"required,min=0"`
	ExerciseCost *float64   `json:"K" binding:"required,min=0"`
	Maturity     *float64   `json:"T" binding:"required,min=0,max=1000"`
	Volatility   *float64   `json:"sigma" binding:"required,min=0"`
	RiskFree     *float64   `json:"r" binding:"required"`
	DeltaMode    string     `json:"delta-mode"`
	Delta        deltaField `json:"delta"`
	Export       string     `json:"export"`
}

func (req valuationRequest) input() valuation.Input {
	return valuation.Input{
		AssetValue:   *req.AssetValue,
		ExerciseCost: *req.ExerciseCost,
		Maturity:     *req.Maturity,
		Volatility:   *req.Volatility,
		RiskFree:     *req.RiskFree,
		DeltaMode:    req.DeltaMode,
		Delta:        string(req.Delta),
	}
}

func (server *Server) value(c *gin.Context) {
	var req valuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.metrics.requests.WithLabelValues(outcomeInvalid).Inc()
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ctx := c.Request.Context()
	if server.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, server.config.RequestTimeout)
		defer cancel()
	}

	start := time.Now()
	v, err := server.service.Compute(ctx, req.input())
	server.metrics.duration.Observe(time.Since(start).Seconds())
	if err != nil {
		if valuation.IsValidation(err) {
			server.metrics.requests.WithLabelValues(outcomeInvalid).Inc()
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
			return
		}
		server.metrics.requests.WithLabelValues(outcomeError).Inc()
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if err := server.saveHistory(ctx, c.GetString(requesterKey), v); err != nil {
		server.metrics.requests.WithLabelValues(outcomeError).Inc()
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	if req.Export == "excel" {
		var buf bytes.Buffer
		if err := export.Write(&buf, v); err != nil {
			server.metrics.requests.WithLabelValues(outcomeError).Inc()
			c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse(err))
			return
		}
		server.metrics.requests.WithLabelValues(outcomeOK).Inc()
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName))
		c.Data(http.StatusOK, export.ContentType, buf.Bytes())
		return
	}

	server.metrics.requests.WithLabelValues(outcomeOK).Inc()
	c.JSON(http.StatusOK, v.Output())
}

func (server *Server) saveHistory(ctx context.Context, requester string, v *valuation.Valuation) error {
	inputs, summary, err := v.HistoryRecord()
	if err != nil {
		return err
	}

	_, err = server.store.SaveCalculationTx(ctx, db.SaveCalculationTxParams{
		Requester:     requester,
		InputParams:   inputs,
		OutputSummary: summary,
		Limit:         int64(server.config.HistoryLimit),
	})
	if err != nil {
		server.logger.WithError(err).WithField("requester", requester).Error("cannot save calculation")
	}
	return err
}
