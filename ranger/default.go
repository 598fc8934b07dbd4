package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/go-redis/redis/v8"
	"github.com/xy-planning-network/boss"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/middleware"
	"github.com/xy-planning-network/boss/http/router"
	"github.com/xy-planning-network/boss/logger"
)

// defaultLogger constructs a [logger.Logger] configured for use in the application.
func defaultLogger(env boss.Environment) logger.Logger {
	return logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(logger.NewLogLevel(os.Getenv(logLevelEnvVar))),
	)
}

// defaultLimiter constructs the [middleware.Limiter] backing the "rate-limit" handler.
//
// When REDIS_URL is set, clients are counted in Redis so every process shares their limits;
// the *redis.Client returned must be closed by the caller.
// Otherwise, clients are counted in memory and the *redis.Client is nil.
func defaultLimiter(ctx context.Context) (middleware.Limiter, *redis.Client, error) {
	burst := boss.EnvVarOrInt(rateLimitBurstEnvVar, DefaultRateLimitBurst)

	dsn := os.Getenv(redisURLEnvVar)
	if dsn == "" {
		return middleware.NewVisitors(boss.EnvVarOrFloat(rateLimitEnvVar, DefaultRateLimit), burst), nil, nil
	}

	window := boss.EnvVarOrDuration(rateLimitWindowEnvVar, DefaultRateLimitWindow)
	if window <= 0 {
		return nil, nil, fmt.Errorf("%w: %w: %s must be positive, got %s", boss.ErrBadConfig, boss.ErrNotValid, rateLimitWindowEnvVar, window)
	}

	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %s", boss.ErrBadConfig, redisURLEnvVar, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("%w: could not reach redis: %s", boss.ErrBadConfig, err)
	}

	return middleware.NewRedisVisitors(client, burst, window), client, nil
}

// defaultHandlers constructs the named handlers a dispatch table can reference.
//
//   - "force-https": cf. [middleware.ForceHTTPS]
//   - "log": cf. [middleware.LogRequest]
//   - "maintenance": cf. [middleware.Maintenance]
//   - "rate-limit": cf. [middleware.RateLimit]
//   - "require-jwt": cf. [middleware.RequireJWT]; signed with JWT_SIGNING_KEY
func defaultHandlers(env boss.Environment, l logger.Logger, lim middleware.Limiter) map[string]*dispatch.Handler {
	return map[string]*dispatch.Handler{
		ForceHTTPSHandler:  middleware.ForceHTTPS(env),
		LogHandler:         middleware.LogRequest(l),
		MaintenanceHandler: middleware.Maintenance(""),
		RateLimitHandler:   middleware.RateLimit(lim),
		RequireJWTHandler:  middleware.RequireJWT([]byte(os.Getenv(JWTSigningKeyEnvVar))),
	}
}

// defaultTable constructs the [*dispatch.Table] the router dispatches requests with.
//
// When ROUTES_FILE is set, the table is loaded from that file; cf. [LoadRoutes].
// Otherwise, every request is logged once:
// "log" runs globally and again for "/:path*", which dispatch deduplicates.
func defaultTable(named map[string]*dispatch.Handler, l logger.Logger) (*dispatch.Table, error) {
	if path := os.Getenv(RoutesFileEnvVar); path != "" {
		l.Debug(fmt.Sprintf("loading routes from %s", path), nil)
		return LoadRoutesFile(path, named, l)
	}

	t := dispatch.NewTable(dispatch.WithGlobal(named[LogHandler]), dispatch.WithLogger(l))
	t.Add("/:path*", []*dispatch.Handler{named[LogHandler]})

	return t, nil
}

// defaultAdapters lists the [middleware.Adapter] wrapping the whole router,
// so dispatched handlers see their effects too.
func defaultAdapters() []middleware.Adapter {
	return []middleware.Adapter{
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.CORS(os.Getenv(corsOriginEnvVar)),
	}
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
func defaultRouter(env boss.Environment, t *dispatch.Table, l logger.Logger) *router.Router {
	r := router.New(env)
	r.Dispatch(t, l)
	r.HandleNotFound(http.NotFoundHandler())

	return r
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := boss.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  boss.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  boss.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: boss.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
