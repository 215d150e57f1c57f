package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type LikeRepository interface {
	// CreateWithMatchCheck inserts the like and, when the reverse like
	// already exists, creates the match in the same transaction. The pair of
	// insert and reciprocity check is atomic per unordered user pair, so two
	// opposite likes racing each other still produce exactly one match.
	// Returns the created match, or nil when the like stays one-way.
	// A duplicate like fails with domain.ErrLikeAlreadyExists and leaves the
	// store untouched.
	CreateWithMatchCheck(ctx context.Context, like *domain.Like) (*domain.Match, error)
	Exists(ctx context.Context, fromUserID, toUserID int) (bool, error)
	GetLikesReceived(ctx context.Context, toUserID int, limit, offset int) ([]*domain.Like, error)
}
