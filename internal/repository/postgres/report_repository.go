package postgres

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
	"github.com/amora-app/amora-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (reporter_id, reported_id, reason, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_resolved, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		report.ReporterID, report.ReportedID, report.Reason, report.Description,
	).Scan(&report.ID, &report.IsResolved, &report.CreatedAt)
}
