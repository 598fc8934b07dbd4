package ranger

import (
	"context"
	"fmt"
	"maps"
	"net/http"

	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/middleware"
	"github.com/xy-planning-network/boss/http/router"
	"github.com/xy-planning-network/boss/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRouter is an example of the second.
// The *router.Router is handed the dispatch table only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithAdapters replaces the default [middleware.Adapter] wrapping the router.
// These run ahead of dispatch.
// Calling WithAdapters with none removes the defaults.
func WithAdapters(adapters ...middleware.Adapter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.adapters = append([]middleware.Adapter{}, adapters...)
		return nil, nil
	}
}

// WithContext exposes the provided context.Context to the boss app.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(envVar string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := boss.Environment(envVar)
		if err := e.Valid(); err != nil {
			e = boss.EnvVarOrEnv(environmentEnvVar, boss.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithHandlers makes named available to the dispatch table
// alongside the default handlers.
// A name already in use replaces the default handler.
//
// WithHandlers has no effect on a table set by WithTable.
func WithHandlers(named map[string]*dispatch.Handler) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if rng.extra == nil {
			rng.extra = make(map[string]*dispatch.Handler, len(named))
		}

		maps.Copy(rng.extra, named)
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the boss app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", boss.ErrNotValid)
		}

		rng.l = l
		return nil, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the boss app
// and has it dispatch with the app's table.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if r == nil {
			return nil, fmt.Errorf("%w: nil router", boss.ErrNotValid)
		}

		return func() error {
			r.Dispatch(rng.table, rng.l)
			rng.Router = r
			rng.l.Debug(fmt.Sprintf("using router %T", r), nil)

			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the boss app.
// Its Handler is replaced with the app's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", boss.ErrNotValid)
		}

		rng.srv = s
		return nil, nil
	}
}

// WithTable sets the *dispatch.Table the router dispatches requests with,
// bypassing the default table and ROUTES_FILE.
func WithTable(t *dispatch.Table) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if t == nil {
			return nil, fmt.Errorf("%w: nil table", boss.ErrNotValid)
		}

		rng.table = t
		return nil, nil
	}
}
