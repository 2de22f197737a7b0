package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

type reviewStore struct {
	*MYSQLStore
}

// Reviews returns an object implementing the Reviews interface
func (ms *MYSQLStore) Reviews() dependency.Reviews {
	return &reviewStore{
		MYSQLStore: ms,
	}
}

func (rs *reviewStore) AddReview(ctx context.Context, ins entity.ReviewInsert, email, ipHash, uaHash string) (int, error) {
	var emailVal any
	if email != "" {
		emailVal = email
	}

	query := `
	INSERT INTO review (name, email, rating, comment, status, ip_hash, ua_hash)
	VALUES (:name, :email, :rating, :comment, :status, :ipHash, :uaHash)`

	id, err := ExecNamedLastId(ctx, rs.DB(), query, map[string]any{
		"name":    ins.Name,
		"email":   emailVal,
		"rating":  ins.Rating,
		"comment": ins.Comment,
		"status":  entity.ReviewStatusPending,
		"ipHash":  ipHash,
		"uaHash":  uaHash,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add review: %w", err)
	}
	return id, nil
}

func (rs *reviewStore) GetApprovedPaged(ctx context.Context, limit, offset int) ([]entity.Review, entity.ReviewSummary, error) {
	query := `
	SELECT id, name, email, rating, comment, status, ip_hash, ua_hash, created_at
	FROM review
	WHERE status = :status
	ORDER BY created_at DESC, id DESC
	LIMIT :limit OFFSET :offset`

	reviews, err := QueryListNamed[entity.Review](ctx, rs.DB(), query, map[string]any{
		"status": entity.ReviewStatusApproved,
		"limit":  limit,
		"offset": offset,
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ReviewSummary{}, fmt.Errorf("failed to query approved reviews: %w", err)
	}

	summary, err := rs.approvedSummary(ctx)
	if err != nil {
		return nil, entity.ReviewSummary{}, err
	}

	if reviews == nil {
		reviews = []entity.Review{}
	}
	return reviews, summary, nil
}

type summaryRaw struct {
	Average sql.NullFloat64 `db:"average"`
	Count   int             `db:"cnt"`
}

func (rs *reviewStore) approvedSummary(ctx context.Context) (entity.ReviewSummary, error) {
	query := `SELECT AVG(rating) AS average, COUNT(*) AS cnt FROM review WHERE status = :status`
	raw, err := QueryNamedOne[summaryRaw](ctx, rs.DB(), query, map[string]any{
		"status": entity.ReviewStatusApproved,
	})
	if err != nil {
		return entity.ReviewSummary{}, fmt.Errorf("failed to query review summary: %w", err)
	}
	return entity.ReviewSummary{
		Average: raw.Average.Float64,
		Count:   raw.Count,
	}, nil
}

func (rs *reviewStore) GetReviews(ctx context.Context, limit int) ([]entity.Review, error) {
	query := `
	SELECT id, name, email, rating, comment, status, ip_hash, ua_hash, created_at
	FROM review
	ORDER BY created_at DESC, id DESC
	LIMIT :limit`

	reviews, err := QueryListNamed[entity.Review](ctx, rs.DB(), query, map[string]any{
		"limit": limit,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []entity.Review{}, nil
		}
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}
	return reviews, nil
}

// Moderate moves a pending review to approved or rejected. Approved and
// rejected are terminal: the status predicate keeps already-moderated rows
// untouched, so re-moderation never re-exposes a rejected review.
func (rs *reviewStore) Moderate(ctx context.Context, id int, status entity.ReviewStatus) error {
	if !entity.ValidModerationStatus(status) {
		return &entity.ValidationError{Message: fmt.Sprintf("invalid moderation status %q", status)}
	}

	query := `UPDATE review SET status = :status WHERE id = :id AND status = :pending`
	_, err := ExecNamedRowsAffected(ctx, rs.DB(), query, map[string]any{
		"id":      id,
		"status":  status,
		"pending": entity.ReviewStatusPending,
	})
	if err != nil {
		return fmt.Errorf("failed to moderate review: %w", err)
	}
	return nil
}
