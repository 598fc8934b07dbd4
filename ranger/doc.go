/*
Package ranger initializes and manages a boss app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].

[*Ranger.Guide] begins a boss app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000).

Stop that web server with [*Ranger.Shutdown],
call [*Ranger.Cancel],
or send a signal [*Ranger.Guide] listens for.

# Dispatch

Every request is first run through the handlers a [*dispatch.Table] resolves for its path.
By default, that table logs each request once.
Set ROUTES_FILE to load a table from YAML instead; cf. [LoadRoutes].
A routes file names its handlers; these are available by default:
  - force-https
  - log
  - maintenance
  - rate-limit
  - require-jwt

[WithHandlers] adds more.

# Configuration

A developer configures a boss app through environment variables and [RangerOption].
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - CORS_ORIGIN: the origin allowed to make cross-origin requests
  - ENVIRONMENT: the environment the application is running in; cf. [boss.Environment]
  - JWT_SIGNING_KEY: the key bearer tokens are signed with for the "require-jwt" handler
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - RATE_LIMIT: requests per second each client may make; default: 5
  - RATE_LIMIT_BURST: requests a client may make at once; default: 20
  - RATE_LIMIT_WINDOW: with REDIS_URL, the window - as understood by [time.ParseDuration] - RATE_LIMIT_BURST requests are counted over; default: 1s
  - REDIS_URL: a redis:// URL; when set, rate limits are shared through Redis
  - ROUTES_FILE: the path to a YAML file describing the dispatch table
  - SENTRY_DSN: the DSN errors are reported to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
*/
package ranger
