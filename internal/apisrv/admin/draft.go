package admin

import (
	"encoding/json"
	"fmt"
	"net/http"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/cms"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// settingDraft stores the dashboard draft under the settings table.
const settingDraft = "cms_draft"

// loadDraft reads the persisted draft and migrates it to the current shape.
// A missing or malformed draft yields the default state.
func (s *Server) loadDraft(r *http.Request) (cms.State, error) {
	raw, err := s.repo.Settings().GetSetting(r.Context(), settingDraft)
	if err != nil {
		return cms.State{}, err
	}
	return cms.Migrate(raw), nil
}

func (s *Server) storeDraft(r *http.Request, state *cms.State) error {
	raw, err := state.Export()
	if err != nil {
		return err
	}
	return s.repo.Settings().SetSetting(r.Context(), settingDraft, raw)
}

// GetDraft returns the dashboard draft, migrated to the current version.
func (s *Server) GetDraft(w http.ResponseWriter, r *http.Request) {
	state, err := s.loadDraft(r)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't load draft", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	render.JSON(w, r, state)
}

// PutDraft replaces the whole draft. The payload is run through migration,
// so old exports import cleanly.
func (s *Server) PutDraft(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}

	var state cms.State
	state.Import(raw)

	if err := s.storeDraft(r, &state); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't store draft", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.JSON(w, r, state)
}

// draftOpRequest is one edit applied server-side to the persisted draft.
type draftOpRequest struct {
	Op      string          `json:"op"`
	Locale  entity.Locale   `json:"locale,omitempty"`
	Patch   json.RawMessage `json:"patch,omitempty"`
	Ids     []string        `json:"ids,omitempty"`
	Id      string          `json:"id,omitempty"`
	Enabled bool            `json:"enabled,omitempty"`
	Index   int             `json:"index,omitempty"`
	Order   []int           `json:"order,omitempty"`
	Service *entity.Service `json:"service,omitempty"`
}

// DraftOp applies a single draft edit and persists the result. The op set
// mirrors the dashboard's editing surface.
func (s *Server) DraftOp(w http.ResponseWriter, r *http.Request) {
	var req draftOpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
		return
	}

	state, err := s.loadDraft(r)
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "can't load draft", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	switch req.Op {
	case "mergeContent":
		err = state.MergeContent(req.Locale, req.Patch)
	case "reorderBlocks":
		state.ReorderBlocks(req.Ids)
	case "toggleBlock":
		state.ToggleBlock(req.Id, req.Enabled)
	case "addService":
		if req.Service == nil {
			err = &entity.ValidationError{Message: "missing service"}
		} else {
			err = state.AddService(req.Locale, *req.Service)
		}
	case "updateService":
		err = state.UpdateService(req.Locale, req.Index, req.Patch)
	case "removeService":
		err = state.RemoveService(req.Locale, req.Index)
	case "reorderServices":
		err = state.ReorderServices(req.Locale, req.Order)
	default:
		err = &entity.ValidationError{Message: fmt.Sprintf("unknown op %q", req.Op)}
	}
	if err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	if err := s.storeDraft(r, &state); err != nil {
		slog.Default().ErrorContext(r.Context(), "can't store draft", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.JSON(w, r, state)
}

// PublishDraft pushes the persisted draft through the publish pipeline.
func (s *Server) PublishDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	state, err := s.loadDraft(r)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load draft", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	ar, err := json.Marshal(state.Content[entity.LocaleAr])
	if err != nil {
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	en, err := json.Marshal(state.Content[entity.LocaleEn])
	if err != nil {
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	design, err := json.Marshal(state.Design)
	if err != nil {
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	req := entity.PublishRequest{Ar: ar, En: en, Design: design}
	if err := entity.ValidatePublishRequest(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}

	if err := s.publishBundle(ctx, req); err != nil {
		slog.Default().ErrorContext(ctx, "can't publish draft", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.Render(w, r, respond.NewOk())
}
