// Package httpkit composes the platform middleware into the API's stack
package httpkit

import (
	"net/http"
	"time"

	"langshim/internal/platform/config"
	"langshim/internal/platform/net/middleware"
)

// StackOptions configures CommonStack
type StackOptions struct {
	CORSOrigins []string
	Slow        time.Duration
	Timeout     time.Duration
}

// StackFromConfig reads CORS_ORIGINS, SLOW and TIMEOUT from cfg
func StackFromConfig(cfg config.Conf) StackOptions {
	return StackOptions{
		CORSOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		Slow:        cfg.MayDuration("SLOW", 500*time.Millisecond),
		Timeout:     cfg.MayDuration("TIMEOUT", 30*time.Second),
	}
}

// CommonStack returns the baseline middleware in mount order
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// observability wraps recovery so panics are logged with their 500
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.RecoverJSON,

		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Heartbeat("/health"),
	}
	if o.Timeout > 0 {
		stack = append(stack, middleware.Timeout(o.Timeout))
	}
	return stack
}
