package match

import (
	"context"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/logging"
	"github.com/amora-app/amora-backend/internal/repository"
)

type MatchUseCase struct {
	likeRepo    repository.LikeRepository
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	log         logging.Logger
}

func NewMatchUseCase(
	likeRepo repository.LikeRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	log logging.Logger,
) *MatchUseCase {
	return &MatchUseCase{
		likeRepo:    likeRepo,
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		log:         log,
	}
}

// LikeResponse reports what a like produced.
type LikeResponse struct {
	Outcome domain.LikeOutcome `json:"outcome"`
	Like    *domain.Like       `json:"like"`
	Match   *domain.Match      `json:"match,omitempty"`
}

// RecordLike registers fromUserID liking toUserID. When the reverse like
// already exists the mutual pair becomes a match in the same storage
// transaction, so concurrent opposite likes cannot both miss it.
func (uc *MatchUseCase) RecordLike(ctx context.Context, fromUserID, toUserID int) (*LikeResponse, error) {
	if fromUserID == toUserID {
		return nil, domain.ErrCannotLikeSelf
	}

	// The target must have an actual profile, not just an account.
	if _, err := uc.profileRepo.GetByUserID(ctx, toUserID); err != nil {
		return nil, err
	}

	like := &domain.Like{FromUserID: fromUserID, ToUserID: toUserID}
	match, err := uc.likeRepo.CreateWithMatchCheck(ctx, like)
	if err != nil {
		return nil, err
	}

	resp := &LikeResponse{Outcome: domain.OutcomeLiked, Like: like}
	if match != nil {
		resp.Outcome = domain.OutcomeMatched
		resp.Match = match
		uc.log.Info(ctx, "match created",
			"match_id", match.ID, "user1_id", match.User1ID, "user2_id", match.User2ID)
	}
	return resp, nil
}

// ListMatches returns every match the user participates in, oldest first.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID int) ([]*domain.Match, error) {
	matches, err := uc.matchRepo.GetUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	if matches == nil {
		matches = []*domain.Match{}
	}
	return matches, nil
}

// LikesReceived returns the likes pointed at the user, newest first.
func (uc *MatchUseCase) LikesReceived(ctx context.Context, userID, limit, offset int) ([]*domain.Like, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	likes, err := uc.likeRepo.GetLikesReceived(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list likes received: %w", err)
	}
	if likes == nil {
		likes = []*domain.Like{}
	}
	return likes, nil
}
