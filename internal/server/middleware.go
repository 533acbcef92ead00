package server

import (
	"bytes"
	"database/sql"
	"fmt"
	"maps"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fyyur/internal/repositories"
	"github.com/desertthunder/fyyur/internal/shared"
)

// RequestIDHeader carries the ID assigned to each request.
const RequestIDHeader = "X-Request-ID"

// ErrorFunc renders err as the response to r.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// Recover turns a panic into a 500 rendered by fail.
func Recover(logger *log.Logger, fail ErrorFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				p := recover()
				if p == nil {
					return
				}
				if p == http.ErrAbortHandler {
					panic(p)
				}
				logger.Error("panic serving request", "method", r.Method, "path", r.URL.Path, "panic", p, "stack", string(debug.Stack()))
				fail(w, r, fmt.Errorf("panic: %v", p))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger assigns every request an ID and logs it on completion with its status and duration.
//
// The request-scoped logger is available to handlers through [log.FromContext].
func RequestLogger(logger *log.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = shared.GenerateID()
			}
			w.Header().Set(RequestIDHeader, id)

			reqLogger := shared.WithLogger(logger, "request_id", id)
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r.WithContext(log.WithContext(r.Context(), reqLogger)))

			reqLogger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		})
	}
}

// CORS allows cross-origin calls from any origin and answers preflight requests with 204.
func CORS() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Transactional runs each request inside one database transaction.
//
// The handler sees a [repositories.Store] bound to the transaction through [repositories.StoreFrom]
// and writes into a buffer. A status below 400 commits, anything else rolls back, and only then is
// the buffer flushed. A failed begin or commit is rendered by fail instead. A panic rolls back
// and keeps unwinding.
func Transactional(db *sql.DB, fail ErrorFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTx(r.Context(), nil)
			if err != nil {
				fail(w, r, fmt.Errorf("failed to begin transaction: %w", err))
				return
			}

			done := false
			defer func() {
				if !done {
					_ = tx.Rollback()
				}
			}()

			buf := newBufferedWriter(w.Header())
			ctx := repositories.WithStore(r.Context(), repositories.NewStore(tx))
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.status >= http.StatusBadRequest {
				done = true
				if err := tx.Rollback(); err != nil {
					log.FromContext(r.Context()).Warn("rollback failed", "error", err)
				}
				buf.flush(w)
				return
			}

			done = true
			if err := tx.Commit(); err != nil {
				fail(w, r, fmt.Errorf("failed to commit transaction: %w", err))
				return
			}
			buf.flush(w)
		})
	}
}

// statusRecorder remembers the status written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

// bufferedWriter holds a whole response until the transaction outcome is known.
type bufferedWriter struct {
	header      http.Header
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func newBufferedWriter(base http.Header) *bufferedWriter {
	return &bufferedWriter{header: base.Clone(), status: http.StatusOK}
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.wroteHeader = true
	b.status = code
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}
	return b.body.Write(p)
}

// flush copies the buffered headers, status and body to w.
func (b *bufferedWriter) flush(w http.ResponseWriter) {
	maps.Copy(w.Header(), b.header)
	w.WriteHeader(b.status)
	_, _ = b.body.WriteTo(w)
}
