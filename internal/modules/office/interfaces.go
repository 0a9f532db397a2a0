package office

import (
	"context"

	"officespace/internal/domain"
	"officespace/internal/repository"
)

// OfficeRepository — only the methods the office service uses
type OfficeRepository interface {
	GetAll(ctx context.Context, f repository.OfficeFilters) ([]domain.Office, error)
	GetByID(ctx context.Context, id int64) (*domain.Office, error)
	CreateWithTags(ctx context.Context, office *domain.Office, tags []domain.Tag) error
	UpdateWithTags(ctx context.Context, office *domain.Office, tags *[]domain.Tag) error
	Update(ctx context.Context, office *domain.Office) error
	SoftDeleteCascade(ctx context.Context, officeID int64) ([]string, error)
	CountActiveReservations(ctx context.Context, officeID int64) (int64, error)
}

type ImageRepository interface {
	Create(ctx context.Context, img *domain.OfficeImage) error
	GetByID(ctx context.Context, id int64) (*domain.OfficeImage, error)
	CountByOffice(ctx context.Context, officeID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type TagRepository interface {
	GetAll(ctx context.Context) ([]domain.Tag, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
}

// ModerationNotifier delivers the "office pending approval" event to every
// moderator. Failures are the notifier's problem; the office flow never
// rolls back on a missed notification.
type ModerationNotifier interface {
	NotifyOfficePendingApproval(ctx context.Context, office *domain.Office) error
}
