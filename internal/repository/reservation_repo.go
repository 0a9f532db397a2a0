package repository

import (
	"context"
	"time"

	"officespace/internal/domain"

	"gorm.io/gorm"
)

type ReservationFilters struct {
	Status   domain.ReservationStatus
	OfficeID int64
	// From and To are either both set or both nil; the service validates
	// that before the query runs.
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetByUserID returns the user's own reservations matching all supplied
// filters, in insertion order.
//
// The date window matches when either endpoint of the reservation falls
// inside [from, to]. A reservation fully spanning the window with neither
// endpoint inside it does not match.
func (r *ReservationRepository) GetByUserID(ctx context.Context, userID int64, f ReservationFilters) ([]domain.Reservation, int64, error) {
	var reservations []domain.Reservation
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("user_id = ?", userID)

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if f.OfficeID > 0 {
		q = q.Where("office_id = ?", f.OfficeID)
	}

	if f.From != nil && f.To != nil {
		q = q.Where(
			"(start_date BETWEEN ? AND ?) OR (end_date BETWEEN ? AND ?)",
			f.From, f.To, f.From, f.To,
		)
	}

	countQuery := q.Session(&gorm.Session{})
	countQuery.Count(&total)

	err := q.
		Preload("Office").
		Preload("Office.Images").
		Order("id ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&reservations).Error

	return reservations, total, err
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}
