package middleware

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goldledger/backend/internal/domain/shared"
	"github.com/goldledger/backend/internal/infrastructure/logger"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader is the request header clients use to make a create
// request safe to retry
const IdempotencyKeyHeader = "Idempotency-Key"

// MaxIdempotencyKeyLength bounds the accepted key size
const MaxIdempotencyKeyLength = 255

// IdempotencyStats is a snapshot of idempotency counters
type IdempotencyStats struct {
	Reserved   int64 `json:"reserved"`
	Duplicates int64 `json:"duplicates"`
	Released   int64 `json:"released"`
	StoreError int64 `json:"store_errors"`
}

// Idempotency rejects a repeated Idempotency-Key on the same route with 409.
// Requests without the header pass through. A key whose request ends in an
// error status is released so the client can retry it. Store failures are
// logged and the request proceeds.
type Idempotency struct {
	store  shared.IdempotencyStore
	ttl    time.Duration
	logger *zap.Logger

	reserved   atomic.Int64
	duplicates atomic.Int64
	released   atomic.Int64
	storeErrs  atomic.Int64
}

// NewIdempotency creates the middleware backed by store
func NewIdempotency(store shared.IdempotencyStore, ttl time.Duration, log *zap.Logger) *Idempotency {
	if log == nil {
		log = zap.NewNop()
	}
	return &Idempotency{store: store, ttl: ttl, logger: log}
}

// Stats returns a snapshot of the counters
func (m *Idempotency) Stats() IdempotencyStats {
	return IdempotencyStats{
		Reserved:   m.reserved.Load(),
		Duplicates: m.duplicates.Load(),
		Released:   m.released.Load(),
		StoreError: m.storeErrs.Load(),
	}
}

// Handler returns the gin middleware
func (m *Idempotency) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
				"Request validation failed",
				GetRequestID(c),
				[]dto.ValidationDetail{{Field: IdempotencyKeyHeader, Message: "Must be at most 255 characters"}},
			))
			return
		}

		ctx := c.Request.Context()
		log := logger.Enrich(ctx, m.logger)
		scoped := c.Request.Method + " " + c.FullPath() + " " + key

		isNew, err := m.store.Reserve(ctx, scoped, m.ttl)
		if err != nil {
			m.storeErrs.Add(1)
			log.Warn("Idempotency check failed, processing anyway",
				zap.String("idempotency_key", key),
				zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			m.duplicates.Add(1)
			log.Info("Duplicate request rejected", zap.String("idempotency_key", key))
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest,
				"A request with this Idempotency-Key was already processed",
				GetRequestID(c),
			))
			return
		}
		m.reserved.Add(1)

		c.Next()

		if c.Writer.Status() < http.StatusBadRequest {
			return
		}
		// context of the finished request may already be cancelled
		if err := m.store.Release(context.WithoutCancel(ctx), scoped); err != nil {
			m.storeErrs.Add(1)
			log.Warn("Failed to release idempotency key",
				zap.String("idempotency_key", key),
				zap.Error(err))
			return
		}
		m.released.Add(1)
	}
}
