// Package frontend serves the public site endpoints: the published content
// bundle, reviews, the contact form and the publish event stream.
package frontend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/broadcast"
	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/kyctrust/kyctrust-manager/internal/middleware"
	"github.com/kyctrust/kyctrust-manager/internal/ratelimit"
)

const (
	reviewsDefaultPageSize = 10
	reviewsMaxPageSize     = 20

	// Public review listings may be briefly stale.
	reviewsCacheControl = "public, max-age=30"
)

type Config struct {
	ContactLimit  int           `mapstructure:"contact_limit"`
	ContactWindow time.Duration `mapstructure:"contact_window"`
}

type Server struct {
	content        dependency.Content
	reviews        dependency.Reviews
	events         *broadcast.Broadcaster
	contactLimiter *ratelimit.Limiter
}

func New(c *Config, content dependency.Content, reviews dependency.Reviews, events *broadcast.Broadcaster) *Server {
	limit := c.ContactLimit
	if limit == 0 {
		limit = 5
	}
	window := c.ContactWindow
	if window == 0 {
		window = time.Minute
	}
	return &Server{
		content:        content,
		reviews:        reviews,
		events:         events,
		contactLimiter: ratelimit.NewLimiter(window, limit),
	}
}

// GetPublished returns the live content bundle, or JSON null when nothing
// has been published yet. Never cached: the dashboard polls this too.
func (s *Server) GetPublished(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pc, err := s.content.GetPublished(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get published content", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	if pc == nil {
		render.JSON(w, r, nil)
		return
	}
	render.JSON(w, r, pc)
}

type submitReviewRequest struct {
	entity.ReviewInsert
	Email string `json:"email"`
	// Website is the honeypot field: humans never see it, bots fill it.
	Website string `json:"website"`
}

type submitReviewResponse struct {
	OK     bool                `json:"ok"`
	Id     int                 `json:"id"`
	Status entity.ReviewStatus `json:"status"`
}

func (s *Server) SubmitReview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}

	if req.Website != "" {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("Spam detected")))
		return
	}
	if err := entity.ValidateReviewInsert(&req.ReviewInsert, req.Email); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	id, err := s.reviews.AddReview(ctx, req.ReviewInsert, req.Email,
		middleware.ClientIPHash(ctx), middleware.ClientUAHash(ctx))
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't add review", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.JSON(w, r, submitReviewResponse{
		OK:     true,
		Id:     id,
		Status: entity.ReviewStatusPending,
	})
}

type listReviewsResponse struct {
	Items    []entity.Review      `json:"items"`
	Summary  entity.ReviewSummary `json:"summary"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// ListReviews returns approved reviews, paged, plus the rating summary.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(r, "pageSize", reviewsDefaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > reviewsMaxPageSize {
		pageSize = reviewsMaxPageSize
	}

	items, summary, err := s.reviews.GetApprovedPaged(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list reviews", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	if items == nil {
		items = []entity.Review{}
	}

	w.Header().Set("Cache-Control", reviewsCacheControl)
	render.JSON(w, r, listReviewsResponse{
		Items:    items,
		Summary:  summary,
		Page:     page,
		PageSize: pageSize,
	})
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Contact validates and acknowledges the contact form. Nothing is stored
// or sent anywhere.
func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !s.contactLimiter.Allow("contact:" + middleware.ClientIP(ctx)) {
		render.Render(w, r, respond.ErrRateLimited("Too many messages, try again later", 60))
		return
	}

	var req entity.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}
	if err := entity.ValidateContactRequest(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	slog.Default().InfoContext(ctx, "contact form submitted", "email", req.Email)
	render.JSON(w, r, contactResponse{
		Success: true,
		Message: "Thanks, we will get back to you shortly",
	})
}

// Events streams publish notifications as server-sent events. Clients
// refetch the published bundle on every event, so delivery gaps are fine.
func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		render.Render(w, r, respond.ErrInternal(fmt.Errorf("streaming unsupported")))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cancel := s.events.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", ev.Id, ev.Type, payload)
			flusher.Flush()
		}
	}
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
