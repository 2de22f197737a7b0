// Package httpapi wires the handler packages into one chi router and runs
// the HTTP server.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"

	"github.com/kyctrust/kyctrust-manager/internal/apisrv/admin"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/frontend"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/gate"
	"github.com/kyctrust/kyctrust-manager/internal/middleware"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Global request budget per client, on top of per-endpoint limits.
	GlobalRateLimit  int           `mapstructure:"global_rate_limit"`
	GlobalRateWindow time.Duration `mapstructure:"global_rate_window"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	if config.GlobalRateLimit == 0 {
		config.GlobalRateLimit = 120
	}
	if config.GlobalRateWindow == 0 {
		config.GlobalRateWindow = time.Minute
	}
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the server exits.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

func (s *Server) setupRouter(gateSrv *gate.Server, frontendSrv *frontend.Server, adminSrv *admin.Server) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.c.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
			http.MethodDelete,
		},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.ClientIdentifier)
	r.Use(httprate.Limit(
		s.c.GlobalRateLimit,
		s.c.GlobalRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// The event stream stays outside the timeout group: it is long-lived.
	r.Get("/api/content/events", frontendSrv.Events)

	r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(60 * time.Second))
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Route("/api", func(r chi.Router) {
			r.Route("/gate", func(r chi.Router) {
				r.Post("/unlock", gateSrv.Unlock)
				r.Post("/lock", gateSrv.Lock)
				r.Get("/status", gateSrv.Status)
			})

			r.Route("/content", func(r chi.Router) {
				r.Get("/published", frontendSrv.GetPublished)
				// Rate limit runs before the gate so throttled clients
				// never exercise password handling.
				r.With(adminSrv.PublishRateLimit, gateSrv.WithGate).
					Post("/published", adminSrv.Publish)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", frontendSrv.ListReviews)
				r.Post("/", frontendSrv.SubmitReview)
				r.With(gateSrv.WithGate).Post("/{id}/moderate", adminSrv.Moderate)
			})

			r.Post("/contact", frontendSrv.Contact)

			r.Route("/users", func(r chi.Router) {
				r.Get("/", adminSrv.Users)
				r.Post("/", adminSrv.AddUser)
				r.Put("/{id}", adminSrv.UpdateUser)
				r.Delete("/{id}", adminSrv.DeleteUser)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/", adminSrv.Analytics)
				r.Post("/", adminSrv.RegenerateAnalytics)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(gateSrv.WithGate)

				r.Get("/reviews", adminSrv.Reviews)
				r.Get("/content/snapshots", adminSrv.Snapshots)

				r.Route("/draft", func(r chi.Router) {
					r.Get("/", adminSrv.GetDraft)
					r.Put("/", adminSrv.PutDraft)
					r.Post("/ops", adminSrv.DraftOp)
					r.With(adminSrv.PublishRateLimit).Post("/publish", adminSrv.PublishDraft)
				})
			})
		})
	})

	return r
}

// Start starts the server and shuts it down when ctx is cancelled.
func (s *Server) Start(ctx context.Context,
	gateSrv *gate.Server,
	frontendSrv *frontend.Server,
	adminSrv *admin.Server,
) error {
	addr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              addr,
		Handler:           s.setupRouter(gateSrv, frontendSrv, adminSrv),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		defer close(s.done)
		slog.Default().InfoContext(ctx, "http server listening", "addr", addr)
		if err := s.hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Default().ErrorContext(ctx, "http server exited", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.hs.Shutdown(shutdownCtx); err != nil {
			slog.Default().Error("http server shutdown failed", "error", err)
		}
	}()

	return nil
}
