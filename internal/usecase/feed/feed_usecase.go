package feed

import (
	"context"
	"fmt"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
)

type FeedUseCase struct {
	profileRepo repository.ProfileRepository
	blockRepo   repository.BlockRepository
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	blockRepo repository.BlockRepository,
) *FeedUseCase {
	return &FeedUseCase{
		profileRepo: profileRepo,
		blockRepo:   blockRepo,
	}
}

// VisibleProfiles returns the profiles the caller is allowed to see: everyone
// except themselves, anyone they have blocked, and anyone outside their
// gender preference. Blocking is directional, so users who blocked the
// caller remain visible to the caller. Age and distance preferences are
// stored but not applied here. Result order is unspecified.
func (uc *FeedUseCase) VisibleProfiles(ctx context.Context, callerID int) ([]*domain.Profile, error) {
	caller, err := uc.profileRepo.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.profileRepo.ListExcluding(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	blockedIDs, err := uc.blockRepo.GetBlockedIDs(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("list blocked users: %w", err)
	}

	return FilterVisible(candidates, blockedIDs, caller.PreferredGender), nil
}

// FilterVisible applies the block and gender-preference steps of the
// visibility pipeline. Pure function, so the filtering rules are testable
// without storage.
func FilterVisible(candidates []*domain.Profile, blockedIDs []int, pref domain.GenderPreference) []*domain.Profile {
	blocked := make(map[int]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	visible := make([]*domain.Profile, 0, len(candidates))
	for _, p := range candidates {
		if _, ok := blocked[p.UserID]; ok {
			continue
		}
		if !pref.Matches(p.Gender) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}
