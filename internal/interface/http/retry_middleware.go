package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ecolife/ecolife-api/internal/infra/config"
)

const retryBodyLimit = 1 << 20

var errBodyTooLarge = errors.New("request body exceeds retry limit")

// postRetrier replays POST requests whose handler answered 5xx. The body is
// buffered once so every attempt sees the same bytes.
type postRetrier struct {
	next        http.Handler
	maxAttempts int
	baseBackoff time.Duration
	exclude     map[string]struct{}
	logger      *slog.Logger
}

// withRetry wraps next with POST retries unless cfg disables them. Paths in
// cfg.Exclude create state and are never replayed.
func withRetry(next http.Handler, cfg config.RetryConfig, logger *slog.Logger) http.Handler {
	if !cfg.Enabled || cfg.MaxAttempts <= 1 {
		return next
	}
	exclude := make(map[string]struct{}, len(cfg.Exclude))
	for _, path := range cfg.Exclude {
		exclude[strings.TrimSuffix(path, "/")] = struct{}{}
	}
	return &postRetrier{
		next:        next,
		maxAttempts: cfg.MaxAttempts,
		baseBackoff: cfg.BaseBackoff,
		exclude:     exclude,
		logger:      logger.With("component", "http.retry"),
	}
}

func (p *postRetrier) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || p.excluded(r.URL.Path) {
		p.next.ServeHTTP(w, r)
		return
	}

	body, err := bufferBody(r)
	if err != nil {
		status := http.StatusBadRequest
		code := "invalid_request"
		if errors.Is(err, errBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
			code = "request_too_large"
		}
		writeJSONError(w, status, code, err.Error())
		return
	}

	// Attempts share one request id so their log lines correlate.
	requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
	if requestID == "" {
		requestID = uuid.NewString()
	}

	var last *bufferedResponse
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepCtx(r.Context(), p.backoff(attempt)); err != nil {
				break
			}
		}

		attemptReq := r.Clone(r.Context())
		attemptReq.Header.Set(requestIDHeader, requestID)
		attemptReq.Body = io.NopCloser(bytes.NewReader(body))
		attemptReq.ContentLength = int64(len(body))

		last = newBufferedResponse()
		p.next.ServeHTTP(last, attemptReq)
		if last.status < http.StatusInternalServerError {
			break
		}
		if attempt < p.maxAttempts {
			p.logger.Warn("retrying request after server error",
				"path", r.URL.Path,
				"status", last.status,
				"attempt", attempt,
				"request_id", requestID,
			)
		}
	}
	last.copyTo(w)
}

func (p *postRetrier) excluded(path string) bool {
	_, ok := p.exclude[strings.TrimSuffix(path, "/")]
	return ok
}

// backoff doubles baseBackoff for each attempt after the second.
func (p *postRetrier) backoff(attempt int) time.Duration {
	return p.baseBackoff << (attempt - 2)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func bufferBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, retryBodyLimit+1))
	if err != nil {
		return nil, err
	}
	if len(data) > retryBodyLimit {
		return nil, errBodyTooLarge
	}
	return data, nil
}

func writeJSONError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}

// bufferedResponse holds one attempt's response until it is known to be final.
type bufferedResponse struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header), status: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}
	b.status = status
	b.wroteHeader = true
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.wroteHeader = true
	return b.body.Write(p)
}

// Flush is a no-op; the response is released by copyTo.
func (b *bufferedResponse) Flush() {}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	dst := w.Header()
	for k, values := range b.header {
		dst[k] = append([]string(nil), values...)
	}
	w.WriteHeader(b.status)
	if b.body.Len() > 0 {
		_, _ = w.Write(b.body.Bytes())
	}
}
