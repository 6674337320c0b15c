// Package telemetry reports unhandled errors to Sentry when a DSN is configured.
// Without a DSN errors are only logged.
package telemetry

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

type Reporter struct {
	log     *logrus.Logger
	enabled bool
}

// New never fails: a missing or rejected DSN leaves reporting log-only.
func New(dsn, environment string, log *logrus.Logger) *Reporter {
	r := &Reporter{log: log}
	if dsn == "" {
		log.Info("SENTRY_DSN not set, error reporting is log-only")
		return r
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		log.WithError(err).Warn("sentry init failed, error reporting is log-only")
		return r
	}

	r.enabled = true
	return r
}

func (r *Reporter) Enabled() bool {
	return r.enabled
}

func (r *Reporter) Report(ctx context.Context, err error, tags map[string]string) {
	if err == nil || !r.enabled {
		return
	}

	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
	}
	hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		hub.CaptureException(err)
	})
}

// Flush waits for queued events; call before exit.
func (r *Reporter) Flush(timeout time.Duration) {
	if !r.enabled {
		return
	}
	if !sentry.Flush(timeout) {
		r.log.Warn("sentry flush timed out")
	}
}
