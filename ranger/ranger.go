package ranger

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"

	"github.com/go-redis/redis/v8"
	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/middleware"
	"github.com/xy-planning-network/boss/http/router"
	"github.com/xy-planning-network/boss/logger"
)

// A Ranger manages and exposes all components of a boss app to one another.
type Ranger struct {
	*router.Router

	adapters []middleware.Adapter
	ctx      context.Context
	cancel   context.CancelFunc
	env      boss.Environment
	extra    map[string]*dispatch.Handler
	handlers map[string]*dispatch.Handler
	l        logger.Logger
	redis    *redis.Client
	srv      *http.Server
	table    *dispatch.Table
}

// New constructs a Ranger from the provided options.
// Options supplied to New overwrite default configurations;
// defaults fill in whatever they leave unset.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{env: boss.EnvVarOrEnv(environmentEnvVar, boss.Development)}
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *Ranger under construction.
	// Some options require data from defaults,
	// so they return an OptFollowup to be called once those are in place.
	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", boss.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.fill(); err != nil {
		r.close()
		return nil, err
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			r.close()
			return nil, fmt.Errorf("%w: %s", boss.ErrBadConfig, err)
		}
	}

	if r.Router == nil {
		r.Router = defaultRouter(r.env, r.table, r.l)
	}

	r.srv.Handler = middleware.Chain(r.Router, r.adapters...)

	return r, nil
}

// fill sets defaults for everything options left unset,
// in the order each depends on the last.
func (r *Ranger) fill() error {
	if r.ctx == nil {
		r.ctx = context.Background()
	}

	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.l == nil {
		r.l = defaultLogger(r.env)
	}

	r.l.Debug(fmt.Sprintf("using env %s", r.env), nil)

	if r.adapters == nil {
		r.adapters = defaultAdapters()
	}

	lim, client, err := defaultLimiter(r.ctx)
	if err != nil {
		return err
	}

	r.redis = client
	r.handlers = defaultHandlers(r.env, r.l, lim)
	maps.Copy(r.handlers, r.extra)

	if r.table == nil {
		if r.table, err = defaultTable(r.handlers, r.l); err != nil {
			return err
		}
	}

	if r.srv == nil {
		r.srv = defaultServer(r.ctx)
	}

	return nil
}

// Context exposes the context.Context the app runs under.
// It is done once the app shuts down.
func (r *Ranger) Context() context.Context { return r.ctx }

// Cancel stops a running app the same as a shutdown signal.
func (r *Ranger) Cancel() { r.cancel() }

func (r *Ranger) EmitEnv() boss.Environment                  { return r.env }
func (r *Ranger) EmitHandlers() map[string]*dispatch.Handler { return maps.Clone(r.handlers) }
func (r *Ranger) EmitLogger() logger.Logger                  { return r.l }
func (r *Ranger) EmitTable() *dispatch.Table                 { return r.table }

// Handler exposes the http.Handler the web server serves requests with.
func (r *Ranger) Handler() http.Handler { return r.srv.Handler }

// Guide begins the web server.
//
// These, and (*Ranger).Cancel, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), &logger.LogContext{Error: err})
			errCh <- err
		}
	}()

	select {
	case <-r.ctx.Done():
		return r.Shutdown()
	case err := <-errCh:
		r.cancel()
		r.close()
		return err
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	r.cancel()
	defer r.close()

	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}

// close releases connections opened by defaults.
func (r *Ranger) close() {
	if r.cancel != nil {
		r.cancel()
	}

	if r.redis == nil {
		return
	}

	if err := r.redis.Close(); err != nil {
		r.l.Warn(fmt.Sprintf("could not close redis: %s", err), &logger.LogContext{Error: err})
	}

	r.redis = nil
}
