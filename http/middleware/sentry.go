package middleware

import (
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/boss"
)

// ReportPanic recovers panics and reports them to Sentry.
//
// In development panics go unrecovered, so NoopAdapter returns.
func ReportPanic(env boss.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return sh.Handle
}
