package controller

import (
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/mouse-blink/modegen/internal/adapter"
	m "github.com/mouse-blink/modegen/internal/model"
)

const maxConfigBytes = 64 << 10

// Generator produces scripts for the preview router.
type Generator interface {
	ScriptFor(config m.Path) (m.Script, error)
	Build(raw map[string]any) (m.Script, error)
}

// PreviewConfig configures NewPreviewRouter.
type PreviewConfig struct {
	// Config is the file served at GET /mode.js. Empty means the default
	// config lookup.
	Config m.Path
	// AllowedOrigins feeds the CORS handler. Empty allows any origin.
	AllowedOrigins []string
	// RequestsPerSecond and Burst limit POST /generate per client address.
	RequestsPerSecond float64
	Burst             int
}

// NewPreviewRouter returns the HTTP handler of the preview server:
//
//	GET  /mode.js    script generated from the config on disk
//	POST /generate   script generated from a JSON config body
//	GET  /healthz    liveness
func NewPreviewRouter(gen Generator, cfg PreviewConfig, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})

	r.Get("/mode.js", func(w http.ResponseWriter, _ *http.Request) {
		script, err := gen.ScriptFor(cfg.Config)
		if err != nil {
			logger.Error("generating preview", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, err.Error())

			return
		}

		writeScript(w, script)
	})

	r.With(rateLimiter(cfg.RequestsPerSecond, cfg.Burst)).Post("/generate", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxConfigBytes))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}

		raw, err := adapter.DecodeConfig(body, ".json")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON config: "+err.Error())
			return
		}

		script, err := gen.Build(raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		writeScript(w, script)
	})

	return r
}

func writeScript(w http.ResponseWriter, script m.Script) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, script.Text)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"code": status, "message": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				slog.String("id", chimw.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("elapsed", time.Since(start)))
		})
	}
}

// rateLimiter is a per-client token bucket. A non-positive rate disables it.
func rateLimiter(perSecond float64, burst int) func(http.Handler) http.Handler {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	burst = max(burst, 1)

	var (
		mu      sync.Mutex
		clients = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		limiter, ok := clients[ip]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
			clients[ip] = limiter
		}

		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reservation := limiterFor(clientIP(r)).Reserve()
			if delay := reservation.Delay(); !reservation.OK() || delay > 0 {
				reservation.Cancel()
				w.Header().Set("Retry-After", strconv.Itoa(int(delay.Seconds())+1))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the host part of RemoteAddr; forwarding headers are not
// trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
