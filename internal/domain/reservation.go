package domain

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is a visitor's booking of an office for an inclusive date
// range. The office core never deletes reservations; their presence only
// blocks office deletion.
type Reservation struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	OfficeID  int64             `json:"office_id"`
	StartDate time.Time         `json:"start_date"`
	EndDate   time.Time         `json:"end_date"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	Office *Office `json:"office,omitempty" gorm:"foreignKey:OfficeID"`
}

func (Reservation) TableName() string { return "reservations" }
