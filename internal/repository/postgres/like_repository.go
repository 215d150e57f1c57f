package postgres

import (
	"context"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) repository.LikeRepository {
	return &likeRepository{db: db}
}

// CreateWithMatchCheck runs the whole like-then-check sequence in one
// transaction, serialized per unordered user pair with an advisory lock.
// Without the lock, two opposite likes can each insert, each see no reverse
// like yet, and the match is never created. The UNIQUE(from_user_id,
// to_user_id) constraint independently rejects a duplicate in the same
// direction.
func (r *likeRepository) CreateWithMatchCheck(ctx context.Context, like *domain.Like) (*domain.Match, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	user1ID, user2ID := domain.OrderedPair(like.FromUserID, like.ToUserID)
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, user1ID, user2ID); err != nil {
		return nil, fmt.Errorf("acquire pair lock: %w", err)
	}

	insertLike := `
		INSERT INTO likes (from_user_id, to_user_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, insertLike, like.FromUserID, like.ToUserID).
		Scan(&like.ID, &like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrLikeAlreadyExists
		}
		return nil, fmt.Errorf("insert like: %w", err)
	}

	var mutual bool
	checkReverse := `SELECT EXISTS (SELECT 1 FROM likes WHERE from_user_id = $1 AND to_user_id = $2)`
	if err := tx.QueryRowContext(ctx, checkReverse, like.ToUserID, like.FromUserID).Scan(&mutual); err != nil {
		return nil, fmt.Errorf("check reciprocity: %w", err)
	}

	var match *domain.Match
	if mutual {
		match = &domain.Match{User1ID: user1ID, User2ID: user2ID}
		insertMatch := `
			INSERT INTO matches (user1_id, user2_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`
		err = tx.QueryRowContext(ctx, insertMatch, user1ID, user2ID).
			Scan(&match.ID, &match.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("insert match: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return match, nil
}

func (r *likeRepository) Exists(ctx context.Context, fromUserID, toUserID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM likes WHERE from_user_id = $1 AND to_user_id = $2)`
	err := r.db.QueryRowContext(ctx, query, fromUserID, toUserID).Scan(&exists)
	return exists, err
}

func (r *likeRepository) GetLikesReceived(ctx context.Context, toUserID int, limit, offset int) ([]*domain.Like, error) {
	var likes []*domain.Like
	query := `
		SELECT * FROM likes
		WHERE to_user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &likes, query, toUserID, limit, offset)
	return likes, err
}
