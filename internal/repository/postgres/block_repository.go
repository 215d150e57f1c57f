package postgres

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type blockRepository struct {
	db *sqlx.DB
}

func NewBlockRepository(db *sqlx.DB) repository.BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(ctx context.Context, block *domain.Block) error {
	query := `
		INSERT INTO blocks (blocker_id, blocked_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, block.BlockerID, block.BlockedID).
		Scan(&block.ID, &block.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrBlockAlreadyExists
	}
	return err
}

func (r *blockRepository) GetBlockedIDs(ctx context.Context, blockerID int) ([]int, error) {
	var ids []int
	query := `SELECT blocked_id FROM blocks WHERE blocker_id = $1`
	err := r.db.SelectContext(ctx, &ids, query, blockerID)
	return ids, err
}
