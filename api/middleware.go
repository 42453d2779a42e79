package api

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	requesterHeaderKey = "X-Requester-ID"
	requesterKey       = "requester"
)

// identify reads the requester id. It identifies the caller for history and
// throttling only; nothing is authenticated.
func (server *Server) identify(c *gin.Context) {
	requester := strings.TrimSpace(c.GetHeader(requesterHeaderKey))
	if len(requester) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(errors.New("requester header is not provided")))
		return
	}

	c.Set(requesterKey, requester)
	c.Next()
}

type limiters struct {
	mu    sync.Mutex
	limit rate.Limit
	burst int
	byID  map[string]*rate.Limiter
}

func newLimiters(perSecond float64, burst int) *limiters {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst < 1 {
		burst = 1
	}
	return &limiters{limit: limit, burst: burst, byID: make(map[string]*rate.Limiter)}
}

func (l *limiters) get(requester string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.byID[requester]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.byID[requester] = limiter
	}
	return limiter
}

func (server *Server) rateLimit(c *gin.Context) {
	if !server.limiters.get(c.GetString(requesterKey)).Allow() {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse(errors.New("too many requests")))
		return
	}
	c.Next()
}

func (server *Server) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	entry := server.logger.WithFields(logrus.Fields{
		"method":    c.Request.Method,
		"path":      c.FullPath(),
		"status":    c.Writer.Status(),
		"latency":   time.Since(start),
		"requester": c.GetString(requesterKey),
	})
	if len(c.Errors) > 0 {
		entry.Warn(c.Errors.String())
		return
	}
	entry.Info("request")
}
