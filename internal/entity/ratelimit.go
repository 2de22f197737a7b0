package entity

import "time"

// RateLimitResult is the outcome of one recorded attempt.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	Reset     time.Time
}
