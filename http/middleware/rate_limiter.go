package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/xy-planning-network/boss/dispatch"
	"github.com/xy-planning-network/boss/http/resp"
	"golang.org/x/time/rate"
)

var (
	_ Limiter = (*Visitors)(nil)
	_ Limiter = (*RedisVisitors)(nil)
)

// A Limiter decides whether the client identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit answers requests from clients over the limits lim sets
// with http.StatusTooManyRequests.
// Clients are told apart by IP address; cf. GetIPAddress.
//
// An error from lim is returned as the handler's error.
func RateLimit(lim Limiter) *dispatch.Handler {
	return dispatch.NewHandler("rate-limit", func(r *http.Request) (dispatch.Response, error) {
		ok, err := lim.Allow(r.Context(), ipFromContext(r))
		if err != nil {
			return nil, err
		}

		if !ok {
			return resp.New(
				resp.Code(http.StatusTooManyRequests),
				resp.Header("Retry-After", "1"),
				resp.Text(http.StatusText(http.StatusTooManyRequests)),
			), nil
		}

		return nil, nil
	})
}

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
//
// A Visitors limits clients of a single process;
// use RedisVisitors when many processes serve the same clients.
type Visitors struct {
	burst int
	limit rate.Limit
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors allowing each client limit requests every second
// with bursts of up to burst.
func NewVisitors(limit float64, burst int) *Visitors {
	return &Visitors{burst: burst, limit: rate.Limit(limit), val: make(map[string]Visitor)}
}

// Allow asserts whether the client at ip may make another request.
// Allow never errors.
func (vs *Visitors) Allow(_ context.Context, ip string) (bool, error) {
	ok := vs.Fetch(ip).Limiter.Allow()
	vs.cleanup()
	return ok, nil
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > 60*time.Minute {
			delete(vs.val, ip)
		}
	}
}

// RedisVisitors limits clients across processes by counting requests
// in fixed windows stored in Redis.
type RedisVisitors struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedisVisitors constructs a *RedisVisitors allowing each client
// limit requests per window.
//
// A window shorter than a second counts requests per second.
func NewRedisVisitors(client *redis.Client, limit int, window time.Duration) *RedisVisitors {
	if window < time.Second {
		window = time.Second
	}

	return &RedisVisitors{client: client, limit: int64(limit), window: window, now: time.Now}
}

// Allow counts a request from the client at ip against the current window
// and asserts whether the client is still within its limit.
func (rv *RedisVisitors) Allow(ctx context.Context, ip string) (bool, error) {
	bucket := rv.now().UnixNano() / int64(rv.window)
	key := "boss:ratelimit:" + ip + ":" + strconv.FormatInt(bucket, 10)

	var incr *redis.IntCmd
	_, err := rv.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, rv.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", ip, err)
	}

	return incr.Val() <= rv.limit, nil
}
