package domain

import "time"

// Session is a revocable login. The ID doubles as the JWT jti claim so a
// token is only valid while its session record exists.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
