// Package capture takes a best-effort snapshot of the user's foreground
// application, window title, and (for browsers) page URL at the moment a
// note is created.
//
// Capture never blocks note creation: the platform call runs under a
// bounded timeout with a single retry, and any failure resolves to a fixed
// fallback context instead of an error.
package capture

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/flashnote/core/internal/logger"
	"github.com/flashnote/core/models"
)

// Fallback context values used when the platform call fails twice or
// returns structurally invalid data.
const (
	FallbackAppName     = "Unknown Application"
	FallbackWindowTitle = "Context capture unavailable"
)

const (
	inspectTimeout = 3 * time.Second
	retryBackoff   = 1 * time.Second
	maxRetries     = 1
)

// ErrInvalidWindowInfo is returned by inspectors whose platform call
// succeeded but produced data missing an application name.
var ErrInvalidWindowInfo = errors.New("window info is missing an application name")

// WindowInfo is the raw result of one platform window-inspection call.
type WindowInfo struct {
	AppName     string
	WindowTitle string
}

// Inspector performs the platform window-inspection call. Implementations
// must honor ctx cancellation; the capturer bounds every attempt with a
// timeout.
type Inspector interface {
	Inspect(ctx context.Context) (WindowInfo, error)
}

// Capturer wraps an [Inspector] with the retry, timeout, and fallback
// protocol.
type Capturer struct {
	inspector Inspector
	logger    *logger.Logger

	timeout time.Duration
	backoff time.Duration
}

// NewCapturer constructs a [Capturer] over the given platform inspector.
func NewCapturer(inspector Inspector, logger *logger.Logger) *Capturer {
	return &Capturer{
		inspector: inspector,
		logger:    logger,
		timeout:   inspectTimeout,
		backoff:   retryBackoff,
	}
}

// Capture returns the current foreground context. Each inspection attempt
// is bounded by the capture timeout; on error or timeout one retry is made
// after a short backoff. A second failure, or structurally invalid data,
// yields the fixed fallback context. Capture never returns an error.
func (c *Capturer) Capture(ctx context.Context) models.CaptureContext {
	var info WindowInfo

	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(c.backoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		result, err := c.inspector.Inspect(attemptCtx)
		if err != nil {
			return retry.RetryableError(err)
		}
		if strings.TrimSpace(result.AppName) == "" {
			return retry.RetryableError(ErrInvalidWindowInfo)
		}

		info = result
		return nil
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("func", "Capturer.Capture").Msg("window inspection failed, using fallback context")
		return models.CaptureContext{
			AppName:     FallbackAppName,
			WindowTitle: FallbackWindowTitle,
		}
	}

	captured := models.CaptureContext{
		AppName:     info.AppName,
		WindowTitle: info.WindowTitle,
	}
	if IsBrowser(info.AppName) {
		captured.URL = ExtractURL(info.WindowTitle)
	}

	return captured
}
