package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/interbanking/backend/internal/domain/shared"
	"github.com/interbanking/backend/internal/interfaces/http/dto"
)

const (
	// IdempotencyKeyHeader carries the client supplied key for a POST request
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotentReplayedHeader is set to "true" on replayed responses
	IdempotentReplayedHeader = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 255
)

// IdempotencyConfig configures the Idempotency middleware
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// bodyCaptureWriter tees the response body so it can be stored.
type bodyCaptureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response of a POST request that carries an
// Idempotency-Key already seen within the TTL. Requests without the header
// and other methods pass through untouched. Responses with a 5xx status are
// not stored, so the client may retry them.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = shared.DefaultIdempotencyConfig().TTL
	}

	return func(c *gin.Context) {
		if cfg.Store == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}
		clientKey := c.GetHeader(IdempotencyKeyHeader)
		if clientKey == "" {
			c.Next()
			return
		}
		if len(clientKey) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest,
				"Idempotency-Key must be at most 255 characters",
				GetRequestID(c),
			))
			return
		}

		ctx := c.Request.Context()
		key := c.Request.Method + ":" + c.Request.URL.Path + ":" + clientKey

		stored, reserved, err := cfg.Store.Reserve(ctx, key, ttl)
		switch {
		case errors.Is(err, shared.ErrIdempotencyKeyInFlight):
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeIdempotencyInFlight,
				"A request with this Idempotency-Key is still being processed",
				GetRequestID(c),
			))
			return
		case err != nil:
			logger.Warn("Idempotency store unavailable, processing request",
				zap.String("key", clientKey),
				zap.Error(err),
			)
			c.Next()
			return
		case !reserved && stored != nil:
			c.Header(IdempotentReplayedHeader, "true")
			c.Data(stored.StatusCode, stored.ContentType, stored.Body)
			c.Abort()
			return
		}

		// A panic unwinds past the status check below; free the key so the
		// client can retry once recovery has answered 500.
		defer func() {
			if r := recover(); r != nil {
				if err := cfg.Store.Release(ctx, key); err != nil {
					logger.Warn("Failed to release idempotency key", zap.String("key", clientKey), zap.Error(err))
				}
				panic(r)
			}
		}()

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		status := writer.Status()
		if status >= http.StatusInternalServerError {
			if err := cfg.Store.Release(ctx, key); err != nil {
				logger.Warn("Failed to release idempotency key", zap.String("key", clientKey), zap.Error(err))
			}
			return
		}

		resp := shared.StoredResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		}
		if err := cfg.Store.Complete(ctx, key, resp, ttl); err != nil {
			logger.Warn("Failed to store idempotent response", zap.String("key", clientKey), zap.Error(err))
		}
	}
}
