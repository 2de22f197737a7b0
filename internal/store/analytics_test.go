package store

import (
	"context"
	"testing"
	"time"

	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyticsUpsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	defer db.Close()
	as := db.Analytics()

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	rows := []entity.AnalyticsDaily{
		{Day: day, Visitors: 500, Leads: 25, Orders: 10, ConversionRate: decimal.NewFromFloat(2.00)},
		{Day: day.AddDate(0, 0, 1), Visitors: 600, Leads: 30, Orders: 12, ConversionRate: decimal.NewFromFloat(2.00)},
	}
	assert.NoError(t, as.UpsertDaily(ctx, rows))

	got, err := as.GetDaily(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// ascending by day
	assert.True(t, got[0].Day.Before(got[1].Day))
	assert.Equal(t, 500, got[0].Visitors)

	// upserting the same day overwrites the row
	rows[0].Visitors = 999
	assert.NoError(t, as.UpsertDaily(ctx, rows[:1]))

	got, err = as.GetDaily(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 999, got[0].Visitors)
}
