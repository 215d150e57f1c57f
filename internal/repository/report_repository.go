package repository

import (
	"context"

	"github.com/amora-app/amora-backend/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
}
