package reservation

import (
	"context"
	"fmt"
	"time"

	"officespace/internal/domain"
	"officespace/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	reservations ReservationRepository
}

func NewService(reservations ReservationRepository) *Service {
	return &Service{reservations: reservations}
}

// FieldErrors carries field-level validation failures up to the handler.
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return fmt.Sprintf("validation failed: %v", map[string]string(e)) }

// ListMine returns the caller's own reservations matching every supplied
// filter. The date window matches by endpoint containment: a reservation is
// included when its start or end date falls inside [from, to]; one that
// fully spans the window without either endpoint inside it is not.
func (s *Service) ListMine(ctx context.Context, visitorID int64, req ListRequest) ([]domain.Reservation, int64, error) {
	f := repository.ReservationFilters{
		OfficeID: req.OfficeID,
	}

	switch req.Status {
	case "":
	case string(domain.ReservationActive):
		f.Status = domain.ReservationActive
	case string(domain.ReservationCancelled):
		f.Status = domain.ReservationCancelled
	default:
		return nil, 0, FieldErrors{"status": "must be active or cancelled"}
	}

	// The date filters only apply as a pair.
	if (req.FromDate == "") != (req.ToDate == "") {
		if req.FromDate == "" {
			return nil, 0, FieldErrors{"from_date": "required with to_date"}
		}
		return nil, 0, FieldErrors{"to_date": "required with from_date"}
	}

	if req.FromDate != "" {
		from, err := time.ParseInLocation(dateLayout, req.FromDate, time.UTC)
		if err != nil {
			return nil, 0, FieldErrors{"from_date": "must be a date (YYYY-MM-DD)"}
		}
		to, err := time.ParseInLocation(dateLayout, req.ToDate, time.UTC)
		if err != nil {
			return nil, 0, FieldErrors{"to_date": "must be a date (YYYY-MM-DD)"}
		}
		if !to.After(from) {
			return nil, 0, FieldErrors{"to_date": "must be after from_date"}
		}
		f.From, f.To = &from, &to
	}

	f.Limit = req.Limit
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	f.Offset = (page - 1) * f.Limit

	return s.reservations.GetByUserID(ctx, visitorID, f)
}
