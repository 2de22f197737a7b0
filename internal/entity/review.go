package entity

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// Review is a visitor-submitted testimonial. Created as pending, moved to
// approved or rejected by moderation and never back.
type Review struct {
	Id        int            `db:"id" json:"id"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	Status    ReviewStatus   `db:"status" json:"status"`
	IPHash    string         `db:"ip_hash" json:"-"`
	UAHash    string         `db:"ua_hash" json:"-"`
	Email     sql.NullString `db:"email" json:"-"`
	ReviewInsert
}

type ReviewInsert struct {
	Name    string `db:"name" json:"name"`
	Rating  int    `db:"rating" json:"rating"`
	Comment string `db:"comment" json:"comment"`
}

// ReviewSummary accompanies the public listing.
type ReviewSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func ValidateReviewInsert(r *ReviewInsert, email string) error {
	r.Name = strings.TrimSpace(r.Name)
	r.Comment = strings.TrimSpace(r.Comment)

	if r.Name == "" {
		return &ValidationError{Message: "name is required"}
	}
	if r.Comment == "" {
		return &ValidationError{Message: "comment is required"}
	}
	if r.Rating < 1 || r.Rating > 5 {
		return &ValidationError{Message: fmt.Sprintf("rating must be between 1 and 5, got %d", r.Rating)}
	}
	if len(r.Name) > 120 {
		return &ValidationError{Message: "name must not exceed 120 characters"}
	}
	if len(r.Comment) > 2000 {
		return &ValidationError{Message: "comment must not exceed 2000 characters"}
	}
	if email != "" && !govalidator.IsEmail(email) {
		return &ValidationError{Message: "invalid email format"}
	}
	return nil
}

// ValidModerationStatus reports whether a status is an acceptable
// moderation target. Pending is not: there is no path back to it.
func ValidModerationStatus(s ReviewStatus) bool {
	return s == ReviewStatusApproved || s == ReviewStatusRejected
}
