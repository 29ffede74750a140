package engagement

import (
	"context"

	"civic/pkg/domain"
)

//go:generate mockgen -package mockengagement -source=interface.go -destination=mock/mockengagement.go *
type Service interface {
	Submit(ctx context.Context, feedback domain.Feedback) (*domain.Feedback, error)
	Recent(ctx context.Context, limit uint) ([]domain.Feedback, error)

	RecordVisit(ctx context.Context, page string) (domain.PageVisits, error)
	Visits(ctx context.Context, page string) (domain.PageVisits, error)
}
