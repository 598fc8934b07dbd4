package dispatch

import (
	"fmt"
	"net/http"
	"slices"
	"sort"

	"github.com/xy-planning-network/boss/logger"
)

// A Dispatcher resolves and runs the handlers registered for a single request.
//
// A Dispatcher is not safe for concurrent use.
// Finish calling Add before calling Execute.
type Dispatcher struct {
	registry
	r *http.Request
}

// New constructs a *Dispatcher for r.
func New(r *http.Request, opts ...Option) *Dispatcher {
	return &Dispatcher{registry: newRegistry(opts), r: r}
}

// A match is a registration that matched the request path, scored for this dispatch only.
type match struct {
	registration
	score float64
}

// Resolve lists the handlers Execute runs, in order, without running them.
func (d *Dispatcher) Resolve() []*Handler {
	if d.r == nil || d.r.URL == nil {
		return nil
	}

	path := d.r.URL.Path
	matches := make([]match, 0, len(d.regs))
	for _, reg := range d.regs {
		if !reg.pattern.Matches(path) {
			continue
		}

		matches = append(matches, match{registration: reg, score: reg.pattern.Score(path)})
	}

	exclusive := make([]match, 0)
	for _, m := range matches {
		if m.exclusive {
			exclusive = append(exclusive, m)
		}
	}

	if len(exclusive) > 0 {
		sort.SliceStable(exclusive, func(i, j int) bool {
			return exclusive[i].score > exclusive[j].score
		})

		handlers := append([]*Handler(nil), exclusive[0].handlers...)
		d.debug(path, matches, handlers)
		return handlers
	}

	handlers := make([]*Handler, 0)
	for _, m := range matches {
		for _, h := range m.handlers {
			if !slices.Contains(handlers, h) {
				handlers = append(handlers, h)
			}
		}
	}

	d.debug(path, matches, handlers)
	return handlers
}

// Execute resolves the handlers for the request and runs them in order
// until one of them responds or errors.
//
// Execute returns Next when none respond.
// Errors from handlers are returned unwrapped.
func (d *Dispatcher) Execute() (Response, error) {
	if d.r == nil {
		return nil, ErrNoRequest
	}

	return run(d.r, d.Resolve())
}

// run calls each of handlers with r until one returns a Response or an error.
func run(r *http.Request, handlers []*Handler) (Response, error) {
	for _, h := range handlers {
		res, err := h.Handle(r)
		if err != nil {
			return nil, err
		}

		if res != nil {
			return res, nil
		}
	}

	return Next, nil
}

func (d *Dispatcher) debug(path string, matches []match, handlers []*Handler) {
	if d.l == nil || d.l.LogLevel() > logger.LogLevelDebug {
		return
	}

	type scored struct {
		Pattern   string  `json:"pattern"`
		Score     float64 `json:"score"`
		Exclusive bool    `json:"exclusive"`
	}

	scores := make([]scored, 0, len(matches))
	for _, m := range matches {
		scores = append(scores, scored{Pattern: m.pattern.String(), Score: m.score, Exclusive: m.exclusive})
	}

	d.l.Debug(
		fmt.Sprintf("dispatch %s: %d of %d registrations matched", path, len(matches), len(d.regs)),
		&logger.LogContext{
			Caller: logger.CurrentCaller(),
			Data:   map[string]any{"matches": scores, "handlers": Names(handlers)},
		},
	)
}
