package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type MatchRepository interface {
	GetByUsers(ctx context.Context, user1ID, user2ID int) (*domain.Match, error)
	// GetUserMatches returns every match the user participates in, oldest
	// first.
	GetUserMatches(ctx context.Context, userID int) ([]*domain.Match, error)
}
