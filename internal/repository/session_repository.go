package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
