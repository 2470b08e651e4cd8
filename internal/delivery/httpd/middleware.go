package httpd

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/briggittemora/Gestion-de-tareas/internal/auth"
	"github.com/briggittemora/Gestion-de-tareas/internal/models"
	"github.com/briggittemora/Gestion-de-tareas/internal/service"
	"github.com/briggittemora/Gestion-de-tareas/pkg/utils"
)

type contextKey string

const (
	loggerKey   contextKey = "logger"
	identityKey contextKey = "identity"
)

// identity is the outcome of reading the bearer token of a request.
type identity struct {
	claims *auth.Claims
	err    error
}

func RequestLogger(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			reqID := middleware.GetReqID(r.Context())
			if reqID == "" {
				reqID = "unknown"
			}

			requestLog := log.With().
				Str("request_id", reqID).
				Logger()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			ctx := context.WithValue(r.Context(), loggerKey, requestLog)
			r = r.WithContext(ctx)

			defer func() {
				requestLog.Info().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Str("query", r.URL.RawQuery).
					Str("ip", r.RemoteAddr).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func Recovery(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil && rvr != http.ErrAbortHandler {
					log.Error().
						Interface("recover", rvr).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Str("ip", r.RemoteAddr).
						Msg("Panic recovered")

					writeError(w, http.StatusInternalServerError, "Error interno del servidor")
				}
			}()

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func requestLogger(r *http.Request, fallback zerolog.Logger) *zerolog.Logger {
	if logger, ok := r.Context().Value(loggerKey).(zerolog.Logger); ok {
		return &logger
	}
	return &fallback
}

// Identify reads the bearer token, if any. It never rejects a request; RequireAuth
// and RequireRole decide what an anonymous or invalid token may reach.
func (h *Handler) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.BearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := h.authService.Authenticate(token)
		ctx := context.WithValue(r.Context(), identityKey, &identity{claims: claims, err: err})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func claimsFromContext(ctx context.Context) *auth.Claims {
	if id, ok := ctx.Value(identityKey).(*identity); ok {
		return id.claims
	}
	return nil
}

func authenticated(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	id, ok := r.Context().Value(identityKey).(*identity)
	switch {
	case !ok:
		writeError(w, http.StatusUnauthorized, "Token no proporcionado")
		return nil, false
	case id.err != nil || id.claims == nil:
		message := "Token inválido"
		if id.err != nil {
			if msg := service.Message(id.err); msg != "" {
				message = msg
			}
		}
		writeError(w, http.StatusUnauthorized, message)
		return nil, false
	default:
		return id.claims, true
	}
}

func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := authenticated(w, r); !ok {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole admits authenticated callers whose role is one of roles.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := authenticated(w, r)
			if !ok {
				return
			}
			if !claims.HasRole(roles...) {
				writeError(w, http.StatusForbidden, "No tienes permiso para realizar esta acción")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

var maintenanceExempt = map[string]bool{
	"/api/auth/login":    true,
	"/api/configuracion": true,
}

// Maintenance answers 503 while maintenance mode is on, except for admins and the
// routes needed to log in and to switch the mode off.
func (h *Handler) Maintenance(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if maintenanceExempt[strings.TrimSuffix(r.URL.Path, "/")] {
			next.ServeHTTP(w, r)
			return
		}
		if claims := claimsFromContext(r.Context()); claims != nil && claims.HasRole(models.RoleAdmin) {
			next.ServeHTTP(w, r)
			return
		}

		settings, err := h.settingsService.GetSettings(r.Context())
		if err != nil {
			requestLogger(r, h.logger).Error().Err(err).Msg("Failed to read maintenance mode")
			next.ServeHTTP(w, r)
			return
		}
		if settings.ModoMantenimiento {
			writeError(w, http.StatusServiceUnavailable, "El sistema está en mantenimiento. Inténtalo más tarde.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
