package middleware

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"
	"sync"
	"time"

	"DocSlot/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Limiter admits at most a fixed number of hits per key in a rolling window.
// retryAfter is only meaningful when allowed is false.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// window is the sliding log for one key.
type window struct {
	mu   sync.Mutex
	hits []time.Time
}

type MemoryLimiter struct {
	limit   int
	period  time.Duration
	now     func() time.Time
	mu      sync.RWMutex
	windows map[string]*window
}

func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		period:  period,
		now:     time.Now,
		windows: make(map[string]*window),
	}
}

func (l *MemoryLimiter) window(key string) *window {
	l.mu.RLock()
	w, ok := l.windows[key]
	l.mu.RUnlock()
	if ok {
		return w
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if w, ok := l.windows[key]; ok {
		return w
	}
	w = &window{}
	l.windows[key] = w
	return w
}

/*
* Drop hits older than the window
* Refuse when the window is full and report when its oldest hit leaves
* Otherwise record this hit
 */
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	w := l.window(key)
	now := l.now()
	cutoff := now.Add(-l.period)

	w.mu.Lock()
	defer w.mu.Unlock()
	kept := w.hits[:0]
	for _, t := range w.hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.hits = kept
	if len(w.hits) >= l.limit {
		return false, w.hits[0].Add(l.period).Sub(now), nil
	}
	w.hits = append(w.hits, now)
	return true, 0, nil
}

// Prune forgets keys whose window is empty and reports how many it dropped.
func (l *MemoryLimiter) Prune() int {
	cutoff := l.now().Add(-l.period)
	l.mu.Lock()
	defer l.mu.Unlock()
	pruned := 0
	for key, w := range l.windows {
		w.mu.Lock()
		stale := len(w.hits) == 0 || !w.hits[len(w.hits)-1].After(cutoff)
		w.mu.Unlock()
		if stale {
			delete(l.windows, key)
			pruned++
		}
	}
	return pruned
}

// slidingWindow trims, counts and records in one round trip so concurrent
// logins from the same address cannot all slip under the limit.
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local period = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call("ZREMRANGEBYSCORE", key, "-inf", now - period)
local count = redis.call("ZCARD", key)
if count >= limit then
  local oldest = redis.call("ZRANGE", key, 0, 0, "WITHSCORES")
  return {0, tonumber(oldest[2]) + period - now}
end
redis.call("ZADD", key, now, ARGV[4])
redis.call("PEXPIRE", key, period)
return {1, 0}
`)

type RedisLimiter struct {
	client *redis.Client
	limit  int
	period time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, limit int, period time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: limit, period: period, prefix: "RATE_LIMIT:", now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := l.now().UnixMilli()
	res, err := slidingWindow.Run(ctx, l.client, []string{l.prefix + key},
		now, l.period.Milliseconds(), l.limit, strconv.FormatInt(now, 10)+"-"+uuid.NewString()).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	if len(res) != 2 {
		return false, 0, errors.New("unexpected rate limiter reply")
	}
	return res[0] == 1, time.Duration(res[1]) * time.Millisecond, nil
}

// LoginKey is the socket address of the caller. Forwarding headers are
// ignored since any client can set them.
func LoginKey(c *gin.Context) string {
	return "login:" + c.RemoteIP()
}

/*
* Key the limiter on the client address
* A limiter failure lets the request through
 */
func LoginRateLimit(l Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter, err := l.Allow(c.Request.Context(), LoginKey(c))
		if err != nil {
			log.Println("Error from the login rate limiter: ", err)
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.Header("X-RateLimit-Remaining", "0")
			WriteError(c, apperrors.ErrTooManyLogins)
			return
		}
		c.Next()
	}
}
