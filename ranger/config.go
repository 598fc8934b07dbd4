package ranger

import "time"

const (
	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Dispatch defaults
	RoutesFileEnvVar    = "ROUTES_FILE"
	JWTSigningKeyEnvVar = "JWT_SIGNING_KEY"
	corsOriginEnvVar    = "CORS_ORIGIN"

	// Rate limit defaults
	redisURLEnvVar         = "REDIS_URL"
	rateLimitEnvVar        = "RATE_LIMIT"
	DefaultRateLimit       = 5.0
	rateLimitBurstEnvVar   = "RATE_LIMIT_BURST"
	DefaultRateLimitBurst  = 20
	rateLimitWindowEnvVar  = "RATE_LIMIT_WINDOW"
	DefaultRateLimitWindow = time.Second

	// Web server defaults
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

// Names of the handlers [New] makes available to the dispatch table by default.
const (
	ForceHTTPSHandler  = "force-https"
	LogHandler         = "log"
	MaintenanceHandler = "maintenance"
	RateLimitHandler   = "rate-limit"
	RequireJWTHandler  = "require-jwt"
)
