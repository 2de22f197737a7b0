// Package admin implements the dashboard handlers: publish pipeline,
// snapshots, review moderation, team users, analytics and the CMS draft.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/broadcast"
	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/kyctrust/kyctrust-manager/internal/middleware"
)

const (
	publishLimitKeyPrefix = "content:publish:"

	snapshotsDefaultLimit = 20
	snapshotsMaxLimit     = 100

	adminReviewsLimit = 200
)

// Revalidator notifies deployed frontends after a publish.
type Revalidator interface {
	RevalidateAll(ctx context.Context, ev broadcast.Event)
}

type Config struct {
	PublishLimit  int           `mapstructure:"publish_limit"`
	PublishWindow time.Duration `mapstructure:"publish_window"`
}

// Server implements handlers for the dashboard.
type Server struct {
	c           *Config
	repo        dependency.Repository
	events      *broadcast.Broadcaster
	revalidator Revalidator
}

// New creates a new server with dashboard handlers.
func New(c *Config, r dependency.Repository, events *broadcast.Broadcaster, rv Revalidator) *Server {
	if c.PublishLimit == 0 {
		c.PublishLimit = 30
	}
	if c.PublishWindow == 0 {
		c.PublishWindow = 5 * time.Minute
	}
	return &Server{
		c:           c,
		repo:        r,
		events:      events,
		revalidator: rv,
	}
}

// PublishRateLimit throttles publish attempts per client IP. It runs before
// the gate check so throttled requests never reach password handling.
func (s *Server) PublishRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key := publishLimitKeyPrefix + middleware.ClientIP(ctx)
		res, err := s.repo.RateLimit().Allow(ctx, key, s.c.PublishLimit, s.c.PublishWindow)
		if err != nil {
			slog.Default().ErrorContext(ctx, "rate limit check failed", "error", err)
			render.Render(w, r, respond.ErrInternal(err))
			return
		}
		if !res.Allowed {
			render.Render(w, r, respond.ErrRateLimited("Too many publishes, slow down", int(s.c.PublishWindow.Seconds())))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Publish overwrites the live content bundle. On success it records one
// snapshot per locale (best effort), notifies event stream subscribers and
// kicks off frontend revalidation.
func (s *Server) Publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req entity.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}
	if err := entity.ValidatePublishRequest(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	if err := s.publishBundle(ctx, req); err != nil {
		slog.Default().ErrorContext(ctx, "can't publish content", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.Render(w, r, respond.NewOk())
}

// publishBundle is the shared tail of the publish pipeline: overwrite the
// live row, record per-locale snapshots (best effort), notify listeners and
// kick off frontend revalidation.
func (s *Server) publishBundle(ctx context.Context, req entity.PublishRequest) error {
	pc, err := s.repo.Content().SetPublished(ctx, req)
	if err != nil {
		return err
	}

	for _, snap := range []struct {
		locale  entity.Locale
		content json.RawMessage
	}{
		{entity.LocaleAr, pc.Ar},
		{entity.LocaleEn, pc.En},
	} {
		if err := s.repo.Content().AddSnapshot(ctx, snap.locale, snap.content); err != nil {
			slog.Default().WarnContext(ctx, "can't record content snapshot",
				"locale", snap.locale,
				"error", err,
			)
		}
	}

	ev := s.events.Publish()
	go s.revalidator.RevalidateAll(context.WithoutCancel(ctx), ev)
	return nil
}

// Snapshots lists recent publish snapshots, newest first.
func (s *Server) Snapshots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var locale *entity.Locale
	if raw := r.URL.Query().Get("locale"); raw != "" {
		l := entity.Locale(raw)
		if !entity.ValidLocale(l) {
			render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("unknown locale %q", raw)))
			return
		}
		locale = &l
	}

	limit := queryInt(r, "limit", snapshotsDefaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > snapshotsMaxLimit {
		limit = snapshotsMaxLimit
	}

	snaps, err := s.repo.Content().GetSnapshots(ctx, locale, limit)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list snapshots", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	if snaps == nil {
		snaps = []entity.ContentSnapshot{}
	}

	w.Header().Set("Cache-Control", "no-store")
	render.JSON(w, r, map[string]interface{}{"items": snaps})
}
