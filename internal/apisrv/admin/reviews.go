package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// adminReview exposes moderation-only fields hidden from the public list.
type adminReview struct {
	entity.Review
	Email  string `json:"email,omitempty"`
	IPHash string `json:"ipHash"`
	UAHash string `json:"uaHash"`
}

// Reviews lists the newest reviews of every status for the moderation queue.
func (s *Server) Reviews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reviews, err := s.repo.Reviews().GetReviews(ctx, adminReviewsLimit)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list reviews", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	items := make([]adminReview, 0, len(reviews))
	for _, rv := range reviews {
		items = append(items, adminReview{
			Review: rv,
			Email:  rv.Email.String,
			IPHash: rv.IPHash,
			UAHash: rv.UAHash,
		})
	}

	w.Header().Set("Cache-Control", "no-store")
	render.JSON(w, r, map[string]interface{}{"items": items})
}

type moderateRequest struct {
	Status entity.ReviewStatus `json:"status"`
}

// Moderate moves a pending review to approved or rejected. Approved and
// rejected are terminal: re-moderation succeeds without changing the row.
func (s *Server) Moderate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := urlParamInt(r, "id")
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}
	if !entity.ValidModerationStatus(req.Status) {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("status must be approved or rejected")))
		return
	}

	if err := s.repo.Reviews().Moderate(ctx, id, req.Status); err != nil {
		slog.Default().ErrorContext(ctx, "can't moderate review",
			"id", id,
			"error", err,
		)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.Render(w, r, respond.NewOk())
}
