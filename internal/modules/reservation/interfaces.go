package reservation

import (
	"context"

	"officespace/internal/domain"
	"officespace/internal/repository"
)

// ReservationRepository — only the methods the reservation service uses
type ReservationRepository interface {
	GetByUserID(ctx context.Context, userID int64, f repository.ReservationFilters) ([]domain.Reservation, int64, error)
}
