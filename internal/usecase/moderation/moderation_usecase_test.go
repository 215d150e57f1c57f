package moderation

import (
	"context"
	"testing"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/logging"
	"github.com/amora-app/amora-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(t *testing.T) (*ModerationUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uc := NewModerationUseCase(store.BlockRepo(), store.ReportRepo(), store.UserRepo(), logging.New("error"))
	return uc, store
}

func seedUser(t *testing.T, store *memory.Store, email string) int {
	t.Helper()
	u := &domain.User{Email: email, PasswordHash: "x"}
	require.NoError(t, store.UserRepo().Create(context.Background(), u))
	return u.ID
}

func TestBlockUser(t *testing.T) {
	uc, store := newTestUseCase(t)
	u1 := seedUser(t, store, "a@example.com")
	u2 := seedUser(t, store, "b@example.com")

	block, err := uc.BlockUser(context.Background(), u1, u2)
	require.NoError(t, err)
	assert.Equal(t, u1, block.BlockerID)
	assert.Equal(t, u2, block.BlockedID)

	// Only the blocker's edge exists.
	ids, err := store.BlockRepo().GetBlockedIDs(context.Background(), u1)
	require.NoError(t, err)
	assert.Equal(t, []int{u2}, ids)

	ids, err = store.BlockRepo().GetBlockedIDs(context.Background(), u2)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestBlockUser_Duplicate(t *testing.T) {
	uc, store := newTestUseCase(t)
	u1 := seedUser(t, store, "a@example.com")
	u2 := seedUser(t, store, "b@example.com")

	_, err := uc.BlockUser(context.Background(), u1, u2)
	require.NoError(t, err)

	_, err = uc.BlockUser(context.Background(), u1, u2)
	assert.ErrorIs(t, err, domain.ErrBlockAlreadyExists)
}

func TestBlockUser_SelfAndMissing(t *testing.T) {
	uc, store := newTestUseCase(t)
	u1 := seedUser(t, store, "a@example.com")

	_, err := uc.BlockUser(context.Background(), u1, u1)
	assert.ErrorIs(t, err, domain.ErrCannotBlockSelf)

	_, err = uc.BlockUser(context.Background(), u1, 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestReportUser(t *testing.T) {
	uc, store := newTestUseCase(t)
	u1 := seedUser(t, store, "a@example.com")
	u2 := seedUser(t, store, "b@example.com")

	report, err := uc.ReportUser(context.Background(), u1, u2, &ReportRequest{
		Reason:      "spam",
		Description: "sends the same message repeatedly",
	})
	require.NoError(t, err)
	assert.Equal(t, u1, report.ReporterID)
	assert.Equal(t, u2, report.ReportedID)
	assert.Equal(t, domain.ReasonSpam, report.Reason)
	assert.False(t, report.IsResolved)

	// Reporting twice is allowed; reports are append-only.
	_, err = uc.ReportUser(context.Background(), u1, u2, &ReportRequest{Reason: "other"})
	assert.NoError(t, err)
}

func TestReportUser_InvalidReason(t *testing.T) {
	uc, store := newTestUseCase(t)
	u1 := seedUser(t, store, "a@example.com")
	u2 := seedUser(t, store, "b@example.com")

	_, err := uc.ReportUser(context.Background(), u1, u2, &ReportRequest{Reason: "rudeness"})
	assert.ErrorIs(t, err, domain.ErrInvalidReportReason)
}

func TestReportUser_SelfAndMissing(t *testing.T) {
	uc, store := newTestUseCase(t)
	u1 := seedUser(t, store, "a@example.com")

	_, err := uc.ReportUser(context.Background(), u1, u1, &ReportRequest{Reason: "spam"})
	assert.ErrorIs(t, err, domain.ErrCannotReportSelf)

	_, err = uc.ReportUser(context.Background(), u1, 999, &ReportRequest{Reason: "spam"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
