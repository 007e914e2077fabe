package server

import (
	"fmt"
	"net/http"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	log "github.com/sirupsen/logrus"

	authsvc "authflow/internal/auth"
	"authflow/internal/config"
	"authflow/internal/handlers"
	"authflow/internal/handlers/auth"
	"authflow/internal/middleware"
)

type Server struct {
	Addr      string
	Auth      *authsvc.Service
	JWTSecret string
	JWTTTLHrs int
	ClientURL string
	Secure    bool
}

func NewServer(cfg *config.Config, svc *authsvc.Service) *Server {
	return &Server{
		Addr:      ":" + cfg.Port,
		Auth:      svc,
		JWTSecret: cfg.JWTSecret,
		JWTTTLHrs: cfg.JWTTTLHrs,
		ClientURL: cfg.ClientURL,
		Secure:    cfg.IsProduction(),
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router builds the route tree. Split out of Run so tests can mount it.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// middlewares
	r.Use(logger.Logger("router", log.StandardLogger()))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{s.ClientURL},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprintln(w, "Welcome to authflow API! Server is running....")
	})
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/auth", func(r chi.Router) {
		// public lifecycle routes
		r.Post("/signup", HandlerFunc(&auth.SignupHandler{
			Auth:     s.Auth,
			TTLHours: s.JWTTTLHrs,
			Secure:   s.Secure,
		}))
		r.Post("/verify-email", HandlerFunc(&auth.VerifyEmailHandler{Auth: s.Auth}))
		r.Post("/login", HandlerFunc(&auth.LoginHandler{
			Auth:     s.Auth,
			TTLHours: s.JWTTTLHrs,
			Secure:   s.Secure,
		}))
		r.Post("/logout", HandlerFunc(&auth.LogoutHandler{Secure: s.Secure}))
		r.Post("/forgot-password", HandlerFunc(&auth.ForgotPasswordHandler{Auth: s.Auth}))
		r.Post("/reset-password/{token}", HandlerFunc(&auth.ResetPasswordHandler{Auth: s.Auth}))

		// session-guarded routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(s.JWTSecret))
			r.Get("/check-auth", HandlerFunc(&auth.CheckAuthHandler{Auth: s.Auth}))
		})
	})

	return r
}

func (s *Server) Run() error {
	log.Infof("Server running on %s", s.Addr)
	return http.ListenAndServe(s.Addr, s.Router())
}
