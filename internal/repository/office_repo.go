package repository

import (
	"context"
	"time"

	"officespace/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activeReservationsCount annotates each office row with the number of
// reservations still active against it. Plain subquery so it works on both
// SQLite and PostgreSQL.
const activeReservationsCount = "(SELECT COUNT(*) FROM reservations" +
	" WHERE reservations.office_id = offices.id AND reservations.status = 'active')" +
	" AS reservations_count"

type OfficeFilters struct {
	// OwnerID restricts results to offices listed by that host.
	OwnerID int64
	// VisitorID restricts results to offices having at least one reservation
	// by that visitor (existence check, not a join).
	VisitorID int64
	// IncludeUnlisted skips the approved-and-not-hidden visibility filter.
	// Set only when the caller is listing their own offices.
	IncludeUnlisted bool
}

type OfficeRepository struct {
	db *gorm.DB
}

func NewOfficeRepository(db *gorm.DB) *OfficeRepository {
	return &OfficeRepository{db: db}
}

// GetAll returns every office matching the filters, with tags, images and
// owner preloaded and the active-reservation count annotated. Ordering and
// pagination are the service's concern (distance ranking happens in-process).
func (r *OfficeRepository) GetAll(ctx context.Context, f OfficeFilters) ([]domain.Office, error) {
	var offices []domain.Office

	q := r.db.WithContext(ctx).
		Model(&domain.Office{}).
		Select("offices.*, " + activeReservationsCount).
		Where("deleted_at IS NULL")

	if !f.IncludeUnlisted {
		q = q.Where("approval_status = ? AND hidden = ?", domain.ApprovalApproved, false)
	}

	if f.OwnerID > 0 {
		q = q.Where("user_id = ?", f.OwnerID)
	}

	// Subquery instead of JOIN so the same query runs on SQLite and Postgres.
	if f.VisitorID > 0 {
		sub := r.db.Model(&domain.Reservation{}).
			Select("office_id").
			Where("user_id = ?", f.VisitorID)
		q = q.Where("id IN (?)", sub)
	}

	err := q.
		Preload("Tags").
		Preload("Images").
		Preload("User").
		Order("id ASC").
		Find(&offices).Error

	return offices, err
}

// GetByID fetches a single office with the same annotations as GetAll.
// Soft-deleted offices are treated as missing.
func (r *OfficeRepository) GetByID(ctx context.Context, id int64) (*domain.Office, error) {
	var office domain.Office

	err := r.db.WithContext(ctx).
		Model(&domain.Office{}).
		Select("offices.*, "+activeReservationsCount).
		Where("offices.id = ? AND deleted_at IS NULL", id).
		Preload("Tags").
		Preload("Images").
		Preload("User").
		First(&office).Error

	if err != nil {
		return nil, err
	}

	return &office, nil
}

// CreateWithTags persists a new office and its tag memberships atomically.
func (r *OfficeRepository) CreateWithTags(ctx context.Context, office *domain.Office, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(office).Error; err != nil {
			return err
		}
		if len(tags) > 0 {
			if err := tx.Model(office).Association("Tags").Append(&tags); err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateWithTags saves the office and, when tags is non-nil, replaces the tag
// membership in the same transaction. A nil tags slice leaves membership
// untouched; an empty one clears it.
func (r *OfficeRepository) UpdateWithTags(ctx context.Context, office *domain.Office, tags *[]domain.Tag) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(office).Error; err != nil {
			return err
		}
		if tags != nil {
			if err := tx.Model(office).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *OfficeRepository) Update(ctx context.Context, office *domain.Office) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(office).Error
}

// SoftDeleteCascade marks the office deleted and removes its image rows in
// one transaction. It returns the storage paths of the removed images so the
// caller can drop the underlying bytes after the transaction commits.
func (r *OfficeRepository) SoftDeleteCascade(ctx context.Context, officeID int64) ([]string, error) {
	var paths []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var images []domain.OfficeImage
		if err := tx.Where("office_id = ?", officeID).Find(&images).Error; err != nil {
			return err
		}
		for _, img := range images {
			paths = append(paths, img.Path)
		}

		if err := tx.Where("office_id = ?", officeID).Delete(&domain.OfficeImage{}).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Office{}).
			Where("id = ?", officeID).
			Update("deleted_at", time.Now()).Error
	})

	if err != nil {
		return nil, err
	}
	return paths, nil
}

// CountActiveReservations returns how many active reservations exist for the
// office. Deletion is blocked while this is non-zero.
func (r *OfficeRepository) CountActiveReservations(ctx context.Context, officeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("office_id = ? AND status = ?", officeID, domain.ReservationActive).
		Count(&count).Error
	return count, err
}

func (r *OfficeRepository) DB() *gorm.DB {
	return r.db
}
