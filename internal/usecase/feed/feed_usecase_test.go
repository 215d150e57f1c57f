package feed

import (
	"context"
	"testing"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, store *memory.Store, userID int, gender domain.Gender, pref domain.GenderPreference) {
	t.Helper()
	err := store.ProfileRepo().Create(context.Background(), &domain.Profile{
		UserID:          userID,
		Gender:          gender,
		PreferredGender: pref,
	})
	require.NoError(t, err)
}

func userIDs(profiles []*domain.Profile) []int {
	ids := make([]int, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}
	return ids
}

func TestVisibleProfiles_ExcludesSelf(t *testing.T) {
	store := memory.NewStore()
	uc := NewFeedUseCase(store.ProfileRepo(), store.BlockRepo())

	seed(t, store, 1, domain.GenderMale, domain.PreferAny)
	seed(t, store, 2, domain.GenderFemale, domain.PreferAny)

	visible, err := uc.VisibleProfiles(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, userIDs(visible), 1)
	assert.Contains(t, userIDs(visible), 2)
}

func TestVisibleProfiles_GenderPreference(t *testing.T) {
	store := memory.NewStore()
	uc := NewFeedUseCase(store.ProfileRepo(), store.BlockRepo())

	// U1 prefers women; U2 is a woman, U3 is a man.
	seed(t, store, 1, domain.GenderMale, domain.PreferFemale)
	seed(t, store, 2, domain.GenderFemale, domain.PreferAny)
	seed(t, store, 3, domain.GenderMale, domain.PreferAny)

	visible, err := uc.VisibleProfiles(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, userIDs(visible))

	for _, p := range visible {
		assert.Equal(t, domain.GenderFemale, p.Gender)
	}
}

func TestVisibleProfiles_BlockIsDirectional(t *testing.T) {
	store := memory.NewStore()
	uc := NewFeedUseCase(store.ProfileRepo(), store.BlockRepo())

	seed(t, store, 1, domain.GenderMale, domain.PreferAny)
	seed(t, store, 2, domain.GenderFemale, domain.PreferAny)

	err := store.BlockRepo().Create(context.Background(), &domain.Block{BlockerID: 1, BlockedID: 2})
	require.NoError(t, err)

	// Blocker no longer sees the blocked user.
	visible, err := uc.VisibleProfiles(context.Background(), 1)
	require.NoError(t, err)
	assert.NotContains(t, userIDs(visible), 2)

	// The blocked user still sees the blocker.
	visible, err = uc.VisibleProfiles(context.Background(), 2)
	require.NoError(t, err)
	assert.Contains(t, userIDs(visible), 1)
}

func TestVisibleProfiles_CallerWithoutProfile(t *testing.T) {
	store := memory.NewStore()
	uc := NewFeedUseCase(store.ProfileRepo(), store.BlockRepo())

	_, err := uc.VisibleProfiles(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestFilterVisible(t *testing.T) {
	profiles := []*domain.Profile{
		{UserID: 2, Gender: domain.GenderFemale},
		{UserID: 3, Gender: domain.GenderMale},
		{UserID: 4, Gender: domain.GenderFemale},
		{UserID: 5, Gender: domain.GenderOther},
	}

	tests := []struct {
		name    string
		blocked []int
		pref    domain.GenderPreference
		want    []int
	}{
		{"no filters", nil, domain.PreferAny, []int{2, 3, 4, 5}},
		{"blocked removed", []int{3, 5}, domain.PreferAny, []int{2, 4}},
		{"gender preference", nil, domain.PreferFemale, []int{2, 4}},
		{"both", []int{4}, domain.PreferFemale, []int{2}},
		{"everything filtered", []int{2, 4}, domain.PreferFemale, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVisible(profiles, tt.blocked, tt.pref)
			assert.Equal(t, tt.want, userIDs(got))
		})
	}
}
