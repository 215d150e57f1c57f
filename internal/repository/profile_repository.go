package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	// ListExcluding returns every profile except the given user's own.
	ListExcluding(ctx context.Context, userID int) ([]*domain.Profile, error)
}
