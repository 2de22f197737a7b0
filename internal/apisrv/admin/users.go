package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/kyctrust/kyctrust-manager/internal/store"
)

// Users lists team members, newest first.
func (s *Server) Users(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := s.repo.Users().GetUsers(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't list users", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	if users == nil {
		users = []entity.TeamUser{}
	}

	w.Header().Set("Cache-Control", "no-store")
	render.JSON(w, r, map[string]interface{}{"items": users})
}

func (s *Server) AddUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var ins entity.TeamUserInsert
	// Missing "active" means active, not disabled.
	ins.Active = true
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}
	if err := entity.ValidateTeamUserInsert(&ins); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	user, err := s.repo.Users().AddUser(ctx, ins)
	if err != nil {
		if s.repo.IsErrUniqueViolation(err) {
			render.Render(w, r, respond.ErrConflict("email already exists"))
			return
		}
		slog.Default().ErrorContext(ctx, "can't add user", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.JSON(w, r, user)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := urlParamInt(r, "id")
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	var patch entity.TeamUserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}
	if err := entity.ValidateTeamUserPatch(&patch); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	user, err := s.repo.Users().UpdateUser(ctx, id, patch)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			render.Render(w, r, respond.ErrNotFound("user not found"))
			return
		}
		if s.repo.IsErrUniqueViolation(err) {
			render.Render(w, r, respond.ErrConflict("email already exists"))
			return
		}
		slog.Default().ErrorContext(ctx, "can't update user",
			"id", id,
			"error", err,
		)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.JSON(w, r, user)
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := urlParamInt(r, "id")
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	if err := s.repo.Users().DeleteUser(ctx, id); err != nil {
		slog.Default().ErrorContext(ctx, "can't delete user",
			"id", id,
			"error", err,
		)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.Render(w, r, respond.NewOk())
}
