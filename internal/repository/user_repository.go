package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Delete removes the user; dependent profile, like, match, block and
	// report rows go with it via foreign-key cascade.
	Delete(ctx context.Context, id int) error
}
