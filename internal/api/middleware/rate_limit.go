package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-CalendarService/internal/api/handlers"
)

const (
	defaultBurst       = 5
	defaultIdleTTL     = 10 * time.Minute
	msgTooManyRequests = "слишком много запросов"
)

// RateLimiter ограничивает частоту запросов отдельно для каждого IP клиента
type RateLimiter struct {
	rps     float64
	burst   int
	idleTTL time.Duration
	trusted []netip.Prefix
	now     func() time.Time

	limiters  sync.Map // map[string]*limiterEntry
	lastSweep atomic.Int64
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiterOption настраивает RateLimiter
type RateLimiterOption func(*RateLimiter)

// WithTrustedProxies включает разбор X-Forwarded-For для запросов от указанных прокси
func WithTrustedProxies(prefixes []netip.Prefix) RateLimiterOption {
	return func(l *RateLimiter) {
		l.trusted = prefixes
	}
}

// WithIdleTTL задает время, после которого неиспользуемый лимитер удаляется
func WithIdleTTL(ttl time.Duration) RateLimiterOption {
	return func(l *RateLimiter) {
		if ttl > 0 {
			l.idleTTL = ttl
		}
	}
}

// NewRateLimiter создает ограничитель, rps <= 0 отключает ограничение
func NewRateLimiter(rps float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	if burst <= 0 {
		burst = defaultBurst
	}
	l := &RateLimiter{
		rps:     rps,
		burst:   burst,
		idleTTL: defaultIdleTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep.Store(l.now().UnixNano())
	return l
}

// Middleware отвечает 429, когда лимит клиента исчерпан
func (l *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if l.rps > 0 && !l.getLimiter(l.clientKey(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.now().UnixNano()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		entry := v.(*limiterEntry)
		entry.lastSeen.Store(now)
		return entry.limiter
	}

	entry := &limiterEntry{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
	entry.lastSeen.Store(now)
	actual, loaded := l.limiters.LoadOrStore(key, entry)
	if loaded {
		entry = actual.(*limiterEntry)
		entry.lastSeen.Store(now)
	}
	return entry.limiter
}

// sweep удаляет лимитеры, простаивающие дольше idleTTL; выполняется не чаще раза в idleTTL
func (l *RateLimiter) sweep(now int64) {
	last := l.lastSweep.Load()
	if now-last < int64(l.idleTTL) || !l.lastSweep.CompareAndSwap(last, now) {
		return
	}

	l.limiters.Range(func(key, value any) bool {
		if now-value.(*limiterEntry).lastSeen.Load() >= int64(l.idleTTL) {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *RateLimiter) size() int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// clientKey возвращает IP клиента.
// X-Forwarded-For учитывается только если запрос пришел от доверенного прокси:
// берется ближайший к серверу адрес, не являющийся доверенным прокси.
func (l *RateLimiter) clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return "unknown"
	}

	remote, err := netip.ParseAddr(host)
	if err != nil || !l.isTrusted(remote) {
		return host
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			break
		}
		if !l.isTrusted(addr) {
			return addr.String()
		}
	}
	return host
}

func (l *RateLimiter) isTrusted(addr netip.Addr) bool {
	addr = addr.Unmap()
	for _, p := range l.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
