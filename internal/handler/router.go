package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/multivion/auth-api/internal/config"
	"github.com/multivion/auth-api/internal/usecase"
)

// NewRouter assembles the HTTP surface of the auth server.
func NewRouter(
	logger *zerolog.Logger,
	cfg *config.Config,
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
) *chi.Mux {
	h := newAuthHandler(logger, cfg, authUsecase, passwordResetUsecase)

	r := chi.NewRouter()
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Get("/verify-email/{token}", h.VerifyEmail)
		r.Post("/login", h.Login)
		r.Post("/forgot-password", h.ForgotPassword)
		r.Get("/reset-password/{token}", h.ShowResetForm)
		r.Post("/reset-password/{token}", h.SubmitPasswordReset)
	})

	return r
}

// requestLogger logs one line per completed request with a fresh request id.
func requestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request completed")
		})
	}
}
