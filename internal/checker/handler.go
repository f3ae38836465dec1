// Package checker implements the breach-check form handler: it validates the
// three form values, submits them to the backend and drives the status display.
package checker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Goofygiraffe06/breachcheck/internal/breach"
	"github.com/Goofygiraffe06/breachcheck/internal/logging"
	"github.com/Goofygiraffe06/breachcheck/internal/models"
	"github.com/Goofygiraffe06/breachcheck/internal/status"
	"github.com/Goofygiraffe06/breachcheck/internal/utils"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrMissingFields is returned when any of name, phone or password is empty.
var ErrMissingFields = errors.New("missing required fields")

var validate = validator.New()

// Checker submits one check request to the backend.
type Checker interface {
	Check(ctx context.Context, req models.CheckRequest) (models.CheckResponse, error)
}

// Handler drives a single status display. Invocations may overlap; only the
// most recently started one is allowed to update the display.
type Handler struct {
	client  Checker
	display status.Display
	log     *zap.Logger

	seq atomic.Uint64
	mu  sync.Mutex
}

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the logger that receives developer diagnostics.
func WithLogger(l *zap.Logger) Option { return func(h *Handler) { h.log = l } }

// New creates a handler bound to display.
func New(client Checker, display status.Display, opts ...Option) *Handler {
	h := &Handler{client: client, display: display}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = logging.GetLogger()
	}
	return h
}

// CheckPassword runs one check and leaves its outcome on the display. The
// returned error classifies failures (ErrMissingFields, *breach.APIError,
// *breach.TransportError); the user-facing text is already on the display.
func (h *Handler) CheckPassword(ctx context.Context, in models.FormInputs) error {
	seq := h.seq.Add(1)
	nameHash, phoneHash := utils.HashName(in.Name), utils.HashPhone(in.Phone)

	if err := validate.Struct(in); err != nil {
		h.log.Debug("check rejected: missing fields", zap.Uint64("seq", seq))
		h.publish(seq, status.MissingFields)
		return fmt.Errorf("%w: %w", ErrMissingFields, err)
	}

	h.publish(seq, status.Checking)

	start := time.Now()
	resp, err := h.client.Check(ctx, in.Request())

	var apiErr *breach.APIError
	switch {
	case errors.As(err, &apiErr):
		h.log.Warn("check failed: api error",
			zap.Uint64("seq", seq),
			zap.String("name", nameHash),
			zap.String("phone", phoneHash),
			zap.Int("status", apiErr.StatusCode),
			zap.String("message", apiErr.Message))
		h.publish(seq, status.APIError(apiErr.Message))
		return err

	case err != nil:
		// Diagnostic detail stays in the logs; the user only sees the fixed text.
		h.log.Error("check failed: network error",
			zap.Uint64("seq", seq),
			zap.String("name", nameHash),
			zap.String("phone", phoneHash),
			zap.Error(err))
		h.publish(seq, status.NetworkError)
		var te *breach.TransportError
		if !errors.As(err, &te) {
			err = &breach.TransportError{Op: "check", Err: err}
		}
		return err
	}

	h.log.Info("check completed",
		zap.Uint64("seq", seq),
		zap.String("name", nameHash),
		zap.String("phone", phoneHash),
		zap.Int("breach_count", resp.BreachCount),
		zap.Duration("duration", time.Since(start)))

	if resp.BreachCount > 0 {
		h.publish(seq, status.Breached(resp.BreachCount))
	} else {
		h.publish(seq, status.Safe)
	}
	return nil
}

// publish shows s unless a newer invocation has started since seq was issued.
func (h *Handler) publish(seq uint64, s status.Status) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if latest := h.seq.Load(); seq != latest {
		h.log.Debug("discarding stale status", zap.Uint64("seq", seq), zap.Uint64("latest", latest))
		return false
	}
	h.display.Show(s)
	return true
}
