package dispatch

import (
	"github.com/xy-planning-network/boss/logger"
	"github.com/xy-planning-network/boss/pattern"
)

// An Option configures a Dispatcher or Table when constructing one.
type Option func(*registry)

// WithGlobal registers handlers under the universal pattern "*"
// ahead of any other registration.
func WithGlobal(handlers ...*Handler) Option {
	return func(rg *registry) {
		rg.globals = append(rg.globals, handlers...)
	}
}

// WithLogger sets the logger.Logger resolution is logged to at the debug level.
func WithLogger(l logger.Logger) Option {
	return func(rg *registry) {
		rg.l = l
	}
}

// WithScorePolicy sets the pattern.ScorePolicy exclusive registrations are ranked with.
// The default is pattern.LegacyScore.
func WithScorePolicy(sp pattern.ScorePolicy) Option {
	return func(rg *registry) {
		rg.policy = sp
	}
}

// An AddOption configures a single registration.
type AddOption func(*registration)

// Exclusive marks a registration as exclusive.
// When an exclusive registration matches a request,
// registrations that are not exclusive are ignored for it.
func Exclusive() AddOption {
	return func(reg *registration) {
		reg.exclusive = true
	}
}
