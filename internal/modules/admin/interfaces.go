package admin

import (
	"context"

	"officespace/internal/domain"
)

type OfficeRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	Update(ctx context.Context, office *domain.Office) error
}

// HostNotifier tells the office owner about a moderation decision.
type HostNotifier interface {
	NotifyOfficeApproved(ctx context.Context, office *domain.Office) error
	NotifyOfficeRejected(ctx context.Context, office *domain.Office, reason string) error
}
