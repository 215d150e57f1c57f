package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type BlockRepository interface {
	Create(ctx context.Context, block *domain.Block) error
	// GetBlockedIDs returns the ids of every user the blocker has blocked.
	GetBlockedIDs(ctx context.Context, blockerID int) ([]int, error)
}
