package dispatch

import (
	"github.com/xy-planning-network/boss/logger"
	"github.com/xy-planning-network/boss/pattern"
)

// universalPattern matches every path.
const universalPattern = "*"

// A registration pairs a compiled pattern with the handlers to run when it matches.
type registration struct {
	pattern   *pattern.Pattern
	handlers  []*Handler
	exclusive bool
}

// A registry is an append-only list of registrations.
type registry struct {
	regs    []registration
	globals []*Handler
	l       logger.Logger
	policy  pattern.ScorePolicy
}

func newRegistry(opts []Option) registry {
	var rg registry
	for _, opt := range opts {
		opt(&rg)
	}

	if len(rg.globals) > 0 {
		rg.Add(universalPattern, rg.globals)
		rg.globals = nil
	}

	return rg
}

// Add registers handlers to run for requests whose path matches the pattern raw.
//
// raw is not validated: a malformed pattern never matches; cf. pattern.Validate.
func (rg *registry) Add(raw string, handlers []*Handler, opts ...AddOption) {
	reg := registration{
		pattern:  pattern.Compile(raw, pattern.WithScorePolicy(rg.policy)),
		handlers: append([]*Handler(nil), handlers...),
	}

	for _, opt := range opts {
		opt(&reg)
	}

	rg.regs = append(rg.regs, reg)
}

// Len returns the number of registrations.
func (rg *registry) Len() int { return len(rg.regs) }

// clone copies rg such that appending to the copy never writes into rg's backing array.
func (rg *registry) clone() registry {
	n := len(rg.regs)
	return registry{
		regs:   rg.regs[:n:n],
		l:      rg.l,
		policy: rg.policy,
	}
}
