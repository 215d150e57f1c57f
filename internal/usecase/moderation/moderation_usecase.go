package moderation

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/logging"
	"github.com/amora-app/amora-backend/internal/repository"
)

type ModerationUseCase struct {
	blockRepo  repository.BlockRepository
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	log        logging.Logger
}

func NewModerationUseCase(
	blockRepo repository.BlockRepository,
	reportRepo repository.ReportRepository,
	userRepo repository.UserRepository,
	log logging.Logger,
) *ModerationUseCase {
	return &ModerationUseCase{
		blockRepo:  blockRepo,
		reportRepo: reportRepo,
		userRepo:   userRepo,
		log:        log,
	}
}

// ReportRequest is the report payload.
type ReportRequest struct {
	Reason      string `json:"reason" binding:"required,reportreason"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// BlockUser hides targetID from blockerID's visible profiles. Directional:
// the target keeps seeing the blocker.
func (uc *ModerationUseCase) BlockUser(ctx context.Context, blockerID, targetID int) (*domain.Block, error) {
	if blockerID == targetID {
		return nil, domain.ErrCannotBlockSelf
	}
	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	block := &domain.Block{BlockerID: blockerID, BlockedID: targetID}
	if err := uc.blockRepo.Create(ctx, block); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "user blocked", "blocker_id", blockerID, "blocked_id", targetID)
	return block, nil
}

// ReportUser appends an unresolved moderation record. Resolution happens in
// an external moderation workflow.
func (uc *ModerationUseCase) ReportUser(ctx context.Context, reporterID, targetID int, req *ReportRequest) (*domain.Report, error) {
	if reporterID == targetID {
		return nil, domain.ErrCannotReportSelf
	}

	reason := domain.ReportReason(req.Reason)
	if !reason.Valid() {
		return nil, domain.ErrInvalidReportReason
	}

	if _, err := uc.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}

	report := &domain.Report{
		ReporterID:  reporterID,
		ReportedID:  targetID,
		Reason:      reason,
		Description: req.Description,
	}
	if err := uc.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	uc.log.Info(ctx, "user reported",
		"reporter_id", reporterID, "reported_id", targetID, "reason", string(reason))
	return report, nil
}
