// Package httpclient builds the retrying HTTP client shared by the
// dashboard, weather, and update components.
package httpclient

import (
	nethttp "net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/restmode/restmode/internal/logging"
)

// retryLogger adapts our logger to the retryablehttp.LeveledLogger interface.
// Info/Debug are dropped: retry chatter is only interesting when it fails.
type retryLogger struct {
	logger *logging.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error().Interface("details", keysAndValues).Msg(msg)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn().Interface("details", keysAndValues).Msg(msg)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{})  {}
func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {}

// New returns a standard *http.Client with retry/backoff behavior.
// All remote calls in the application go through clients built here so they
// share the same retry policy.
func New(logger *logging.Logger, timeout time.Duration) *nethttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 3
	retryClient.RetryWaitMin = 1 * time.Second
	retryClient.RetryWaitMax = 10 * time.Second
	retryClient.HTTPClient.Timeout = timeout
	retryClient.Logger = &retryLogger{logger: logger}
	return retryClient.StandardClient()
}
