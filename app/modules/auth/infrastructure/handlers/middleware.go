package authhandlers

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	authservice "github.com/Black-And-White-Club/roomly/app/modules/auth/application"
	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/Black-And-White-Club/roomly/app/shared/httpx"
	"golang.org/x/time/rate"
)

const (
	// cleanupThreshold is the minimum map size before a cleanup pass runs.
	cleanupThreshold = 500
	// maxIdleAge is the duration after which an idle IP entry is eligible for cleanup.
	maxIdleAge = 10 * time.Minute

	// AdminTokenHeader carries the shared secret of the bot relay.
	AdminTokenHeader = "X-Admin-Token"

	tooManyRequestsDetail = "too many requests"
)

var (
	ErrAdminRequired         = apperr.Forbidden("admin required")
	ErrBotAdminNotConfigured = apperr.Unavailable("BOT_ADMIN_TOKEN is not configured")
	ErrInvalidAdminToken     = apperr.Unauthorized("invalid admin token")
)

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter is an IP-based rate limiter that prunes stale entries inline.
type IPRateLimiter struct {
	ips map[string]*ipEntry
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

// NewIPRateLimiter creates a new IPRateLimiter.
func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{
		ips: make(map[string]*ipEntry),
		r:   r,
		b:   b,
	}
}

// GetLimiter returns a rate.Limiter for the given IP, pruning stale entries when the
// map exceeds cleanupThreshold.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	if len(i.ips) > cleanupThreshold {
		cutoff := time.Now().Add(-maxIdleAge)
		for k, e := range i.ips {
			if e.lastSeen.Before(cutoff) {
				delete(i.ips, k)
			}
		}
	}

	e, exists := i.ips[ip]
	if !exists {
		e = &ipEntry{limiter: rate.NewLimiter(i.r, i.b)}
		i.ips[ip] = e
	}
	e.lastSeen = time.Now()

	return e.limiter
}

// RateLimitMiddleware returns a middleware that rate limits requests based on IP.
func RateLimitMiddleware(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.GetLimiter(ip).Allow() {
				httpx.WriteDetail(w, http.StatusTooManyRequests, tooManyRequestsDetail)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware returns a middleware that sets CORS headers for the configured origins.
// When allowedOrigins is empty, no CORS headers are added. A "*" entry allows any origin.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	_, allowAll := origins["*"]

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" {
				if _, ok := origins[origin]; ok || allowAll {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+AdminTokenHeader)
					w.Header().Add("Vary", "Origin")
				}
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Guard holds the authentication and authorization middlewares.
type Guard struct {
	service       authservice.Service
	botAdminToken string
	logger        *slog.Logger
}

// NewGuard creates a Guard. An empty botAdminToken makes every bot request fail.
func NewGuard(service authservice.Service, botAdminToken string, logger *slog.Logger) *Guard {
	return &Guard{service: service, botAdminToken: botAdminToken, logger: logger}
}

// Authenticate resolves the bearer token to a principal stored in the request context.
func (g *Guard) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httpx.WriteError(w, r, g.logger, authservice.ErrMissingToken)
			return
		}

		p, err := g.service.Authenticate(r.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			httpx.WriteError(w, r, g.logger, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(authdomain.WithPrincipal(r.Context(), p)))
	})
}

// RequireAdmin rejects callers without the admin role. It must run after Authenticate.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, err := httpx.Principal(r)
		if err != nil {
			httpx.WriteError(w, r, g.logger, err)
			return
		}
		if !p.IsAdmin() {
			httpx.WriteError(w, r, g.logger, ErrAdminRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireBotToken checks the X-Admin-Token header in constant time.
func (g *Guard) RequireBotToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.botAdminToken == "" {
			httpx.WriteError(w, r, g.logger, ErrBotAdminNotConfigured)
			return
		}
		got := r.Header.Get(AdminTokenHeader)
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(g.botAdminToken)) != 1 {
			httpx.WriteError(w, r, g.logger, ErrInvalidAdminToken)
			return
		}
		next.ServeHTTP(w, r)
	})
}
