package handler

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"expvar"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/time/rate"
)

// publicPaths can be reached without credentials. Each entry also covers the
// paths below it.
var publicPaths = []string{"/api/books", "/api/borrowers", "/swagger-ui", "/spec"}

// recoverPanic middleware recovers from panics and will always be run in the event of a panic.
func (h *Handler) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				h.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// logRequest middleware tags every request with an id, echoed in the
// X-Request-ID header, and logs the outcome at DEBUG level.
func (h *Handler) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		r = h.contextSetRequestID(r, id)
		m := httpsnoop.CaptureMetrics(next, w, r)
		h.logger.PrintDebug("request completed", map[string]string{
			"request_id":     id,
			"request_method": r.Method,
			"request_url":    r.URL.String(),
			"status":         strconv.Itoa(m.Code),
			"duration":       m.Duration.String(),
		})
	})
}

// rateLimit middleware implements IP-based rate limiting to prevent clients from making too many requests
// too quickly, and putting excessive strain on the server.
func (h *Handler) rateLimit(next http.Handler) http.Handler {
	if !h.config.Limiter.Enabled {
		return next
	}
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)
	// Forget clients that have not been seen for three minutes, until Close.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
			}
			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			h.serverErrorResponse(w, r, err)
			return
		}
		mu.Lock()
		if _, found := clients[ip]; !found {
			clients[ip] = &client{
				limiter: rate.NewLimiter(rate.Limit(h.config.Limiter.RPS), h.config.Limiter.Burst),
			}
		}
		clients[ip].lastSeen = time.Now()
		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			h.rateLimitExceededResponse(w, r)
			return
		}
		// Unlock before calling the next handler, not deferred.
		mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// enableCORS middleware relaxes the same-origin policy for the trusted origins.
func (h *Handler) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.Header().Add("Vary", "Access-Control-Request-Method")
		origin := r.Header.Get("Origin")
		if origin != "" {
			for i := range h.config.Cors.TrustedOrigins {
				if origin == h.config.Cors.TrustedOrigins[i] {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Set("Access-Control-Expose-Headers", "Authorization")
					if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
						w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
						w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
						w.WriteHeader(http.StatusOK)
						return
					}
					break
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate middleware requires HTTP basic credentials on every path that
// is not public.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		username, password, ok := r.BasicAuth()
		if !ok {
			h.authenticationRequiredResponse(w, r)
			return
		}
		valid, err := h.verifyCredential(username, password)
		if err != nil {
			h.serverErrorResponse(w, r, err)
			return
		}
		if !valid {
			h.authenticationRequiredResponse(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// verifyCredential checks username and password against the configured
// credential. Successful checks are cached by a hash of the pair.
func (h *Handler) verifyCredential(username, password string) (bool, error) {
	sum := sha256.Sum256([]byte(username + ":" + password))
	key := hex.EncodeToString(sum[:])
	if item := h.cache.Get(key); item != nil && item.Value() {
		return true, nil
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(h.credential.Username)) != 1 {
		return false, nil
	}
	match, err := h.credential.Password.Matches(password)
	if err != nil || !match {
		return false, err
	}
	h.cache.Set(key, true, ttlcache.DefaultTTL)
	return true, nil
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// metrics middleware records request counters in expvar when enabled.
func (h *Handler) metrics(next http.Handler) http.Handler {
	if !h.config.Metrics.Enabled {
		return next
	}
	totalRequestsReceived := expvarInt("total_requests_received")
	totalResponsesSent := expvarInt("total_responses_sent")
	totalProcessingTimeMicrosecond := expvarInt("total_processing_time_μs")
	totalResponsesSentByStatus := expvarMap("total_responses_sent_by_status")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		totalRequestsReceived.Add(1)
		metrics := httpsnoop.CaptureMetrics(next, w, r)
		totalResponsesSent.Add(1)
		totalProcessingTimeMicrosecond.Add(metrics.Duration.Microseconds())
		totalResponsesSentByStatus.Add(strconv.Itoa(metrics.Code), 1)
	})
}

// expvarInt publishes an Int once per process; expvar panics on duplicate names.
func expvarInt(name string) *expvar.Int {
	if v, ok := expvar.Get(name).(*expvar.Int); ok {
		return v
	}
	return expvar.NewInt(name)
}

func expvarMap(name string) *expvar.Map {
	if v, ok := expvar.Get(name).(*expvar.Map); ok {
		return v
	}
	return expvar.NewMap(name)
}
