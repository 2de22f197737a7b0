package store

import (
	"context"
	"testing"

	"github.com/kyctrust/kyctrust-manager/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestReviewLifecycle(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	defer db.Close()
	rs := db.Reviews()

	id, err := rs.AddReview(ctx, entity.ReviewInsert{
		Name:    "Ahmed",
		Rating:  5,
		Comment: "great service",
	}, "ahmed@example.com", "iphash", "uahash")
	assert.NoError(t, err)
	assert.Positive(t, id)

	// fresh review is pending and not publicly visible
	items, summary, err := rs.GetApprovedPaged(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, summary.Count)

	all, err := rs.GetReviews(ctx, 200)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, entity.ReviewStatusPending, all[0].Status)

	err = rs.Moderate(ctx, id, entity.ReviewStatusApproved)
	assert.NoError(t, err)

	items, summary, err = rs.GetApprovedPaged(ctx, 10, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, summary.Count)
	assert.InDelta(t, 5.0, summary.Average, 0.01)

	// approved is terminal: rejecting afterwards changes nothing
	err = rs.Moderate(ctx, id, entity.ReviewStatusRejected)
	assert.NoError(t, err)

	all, err = rs.GetReviews(ctx, 200)
	assert.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusApproved, all[0].Status)
}

func TestReviewPaging(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	defer db.Close()
	rs := db.Reviews()

	for i := 0; i < 5; i++ {
		id, err := rs.AddReview(ctx, entity.ReviewInsert{
			Name:    "User",
			Rating:  4,
			Comment: "ok",
		}, "", "ip", "ua")
		assert.NoError(t, err)
		assert.NoError(t, rs.Moderate(ctx, id, entity.ReviewStatusApproved))
	}

	items, summary, err := rs.GetApprovedPaged(ctx, 2, 0)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 5, summary.Count)

	items, _, err = rs.GetApprovedPaged(ctx, 2, 4)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
