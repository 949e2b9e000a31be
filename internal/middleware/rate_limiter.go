package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Dadminete/dbsismovil/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ventana tracks request counts per client IP within a fixed window.
type ventana struct {
	count int
	hasta time.Time
	mu    sync.Mutex
}

type limiter struct {
	mu      sync.Mutex
	entries map[string]*ventana
	limit   int
	window  time.Duration
	mensaje string
}

func newLimiter(limit int, window time.Duration, mensaje string) *limiter {
	l := &limiter{
		entries: make(map[string]*ventana),
		limit:   limit,
		window:  window,
		mensaje: mensaje,
	}
	go l.purgar()
	return l
}

func (l *limiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		l.mu.Lock()
		v, ok := l.entries[ip]
		if !ok {
			v = &ventana{}
			l.entries[ip] = v
		}
		l.mu.Unlock()

		v.mu.Lock()
		defer v.mu.Unlock()

		now := time.Now()
		if now.After(v.hasta) {
			v.count = 0
			v.hasta = now.Add(l.window)
		}

		v.count++
		if v.count > l.limit {
			c.Header("Retry-After", v.hasta.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.mensaje))
			return
		}
		c.Next()
	}
}

// purgar drops expired windows every few minutes so IPs that never return do
// not accumulate forever.
func (l *limiter) purgar() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		purged := 0

		l.mu.Lock()
		for ip, v := range l.entries {
			v.mu.Lock()
			if now.After(v.hasta) {
				delete(l.entries, ip)
				purged++
			}
			v.mu.Unlock()
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter entries purged")
		}
	}
}

// LoginRateLimiter limits login attempts to 10 per minute per IP. Passwords
// may be legacy plaintext, so brute-force pressure here matters more than on
// the rest of the API.
func LoginRateLimiter() gin.HandlerFunc {
	return newLimiter(10, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").handler()
}

// RateLimiter is the general per-IP limiter applied to the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").handler()
}
