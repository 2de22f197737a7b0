package admin

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/render"
	"github.com/kyctrust/kyctrust-manager/internal/apisrv/respond"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/shopspring/decimal"
)

const (
	analyticsDefaultDays = 14
	analyticsMaxDays     = 90
)

// Analytics returns all daily rows, oldest first.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rows, err := s.repo.Analytics().GetDaily(ctx)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't get analytics", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}
	if rows == nil {
		rows = []entity.AnalyticsDaily{}
	}

	w.Header().Set("Cache-Control", "no-store")
	render.JSON(w, r, map[string]interface{}{"items": rows})
}

type regenerateAnalyticsRequest struct {
	Days int `json:"days"`
}

// RegenerateAnalytics rewrites the last N days with synthetic traffic. The
// numbers are demo data for the dashboard charts, not measurements.
func (s *Server) RegenerateAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := regenerateAnalyticsRequest{Days: analyticsDefaultDays}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Render(w, r, respond.ErrInvalidRequest(fmt.Errorf("bad request body")))
			return
		}
	}
	if req.Days < 1 {
		req.Days = analyticsDefaultDays
	}
	if req.Days > analyticsMaxDays {
		req.Days = analyticsMaxDays
	}

	rows := synthesizeDaily(time.Now(), req.Days)
	if err := s.repo.Analytics().UpsertDaily(ctx, rows); err != nil {
		slog.Default().ErrorContext(ctx, "can't upsert analytics", "error", err)
		render.Render(w, r, respond.ErrInternal(err))
		return
	}

	render.JSON(w, r, map[string]interface{}{"ok": true, "items": rows})
}

// synthesizeDaily generates days rows ending today. Visitors drive leads,
// leads drive orders, so the funnel always narrows.
func synthesizeDaily(now time.Time, days int) []entity.AnalyticsDaily {
	rows := make([]entity.AnalyticsDaily, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Truncate(24 * time.Hour)

		visitors := 400 + rand.Intn(600)
		leads := int(float64(visitors) * (0.04 + rand.Float64()*0.03))
		orders := int(float64(leads) * (0.35 + rand.Float64()*0.15))

		var conversion decimal.Decimal
		if visitors > 0 {
			conversion = decimal.NewFromInt(int64(orders)).
				Div(decimal.NewFromInt(int64(visitors))).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}

		rows = append(rows, entity.AnalyticsDaily{
			Day:            day,
			Visitors:       visitors,
			Leads:          leads,
			Orders:         orders,
			ConversionRate: conversion,
		})
	}
	return rows
}
