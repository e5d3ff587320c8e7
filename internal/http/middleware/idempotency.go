// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements idempotent replay for POST requests. A client that
// sends an Idempotency-Key header gets the first successful response stored
// under (scope, key), where scope is "POST <path>". A retry with the same key
// is answered from the store, marked with Idempotent-Replayed: true, and
// never reaches the handler, so a create is not executed twice.
//
// Persistence is injected through two function types so the middleware
// stays independent of the repo package.
package middleware

import (
	"bytes"
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// HeaderIdempotencyKey carries the client's replay key.
	HeaderIdempotencyKey = "Idempotency-Key"
	// HeaderIdempotentReplayed marks a response served from the store.
	HeaderIdempotentReplayed = "Idempotent-Replayed"
)

// defaultKeyPattern is an RFC 7230 token plus common safe characters.
var defaultKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._~\-:]+$`)

// StoredResponse is a previously produced response.
type StoredResponse struct {
	Status int
	Body   []byte
}

// IdempotencyLookup returns the live response stored for (scope, key), or
// nil when there is none. Expiry is the implementation's concern.
type IdempotencyLookup func(ctx context.Context, scope, key string, now time.Time) (*StoredResponse, error)

// IdempotencySave persists resp for (scope, key). Losing a race to a
// concurrent request with the same key is not an error.
type IdempotencySave func(ctx context.Context, scope, key string, resp StoredResponse) error

// IdempotencyOptions configures Idempotency.
type IdempotencyOptions struct {
	// MaxLen caps the accepted key length. Values <= 0 default to 200.
	MaxLen int
	// Pattern restricts allowed characters; nil uses defaultKeyPattern.
	Pattern *regexp.Regexp

	Lookup IdempotencyLookup
	Save   IdempotencySave
}

// Idempotency returns the replay middleware.
//
// Behavior:
//   - Methods other than POST, and requests without the header, pass through.
//   - A malformed key is rejected with 400.
//   - A stored response is written back verbatim and the chain is aborted.
//   - Otherwise the response is captured and, if it is 2xx, saved.
//
// Lookup and save failures are logged and never fail the request.
func Idempotency(opts IdempotencyOptions) gin.HandlerFunc {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = 200
	}
	pat := opts.Pattern
	if pat == nil {
		pat = defaultKeyPattern
	}

	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if c.Request.Method != http.MethodPost || key == "" {
			c.Next()
			return
		}
		if len(key) > maxLen || !pat.MatchString(key) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"request_id": c.Writer.Header().Get(requestIDHeader),
				"code":       "bad_request",
				"error":      "Idempotency-Key inválida",
				"details": []gin.H{{
					"field":   HeaderIdempotencyKey,
					"message": "Idempotency-Key inválida",
				}},
			})
			return
		}

		ctx := c.Request.Context()
		scope := c.Request.Method + " " + c.Request.URL.Path

		if opts.Lookup != nil {
			prev, err := opts.Lookup(ctx, scope, key, time.Now().UTC())
			if err != nil {
				LoggerFrom(c).Warn().Err(err).Str("scope", scope).Msg("idempotency lookup failed")
			}
			if prev != nil {
				idemReplays.WithLabelValues(routePath(c)).Inc()
				c.Header(HeaderIdempotentReplayed, "true")
				c.Data(prev.Status, "application/json; charset=utf-8", prev.Body)
				c.Abort()
				return
			}
		}

		cw := &capturingWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		status := cw.Status()
		if opts.Save == nil || status < 200 || status >= 300 {
			return
		}
		if err := opts.Save(ctx, scope, key, StoredResponse{Status: status, Body: cw.buf.Bytes()}); err != nil {
			LoggerFrom(c).Warn().Err(err).Str("scope", scope).Msg("idempotency save failed")
		}
	}
}

// capturingWriter tees the response body into buf.
type capturingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *capturingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *capturingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
