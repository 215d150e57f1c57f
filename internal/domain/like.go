package domain

import "time"

// Like is a directed expression of interest. At most one like exists per
// ordered (from, to) pair; likes are never mutated or deleted.
type Like struct {
	ID         int       `json:"id" db:"id"`
	FromUserID int       `json:"from_user_id" db:"from_user_id"`
	ToUserID   int       `json:"to_user_id" db:"to_user_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// LikeOutcome tells the caller what a like produced.
type LikeOutcome string

const (
	OutcomeLiked   LikeOutcome = "liked"
	OutcomeMatched LikeOutcome = "matched"
)
