package reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"officespace/internal/database"
	"officespace/internal/domain"
	"officespace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Office{},
		&domain.OfficeImage{},
		&domain.Reservation{},
	))
	return db
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func seedReservation(t *testing.T, db *gorm.DB, userID, officeID int64, from, to string, status domain.ReservationStatus) domain.Reservation {
	r := domain.Reservation{
		UserID:    userID,
		OfficeID:  officeID,
		StartDate: date(from),
		EndDate:   date(to),
		Status:    status,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func newService(db *gorm.DB) *Service {
	return NewService(repository.NewReservationRepository(db))
}

func ids(list []domain.Reservation) []int64 {
	out := make([]int64, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestListMine_DateWindow(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	office := domain.Office{UserID: 99, Title: "Desk", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&office).Error)

	// starts before the window, ends inside it
	r1 := seedReservation(t, db, 1, office.ID, "2022-03-01", "2022-03-15", domain.ReservationActive)
	// fully inside the window
	r2 := seedReservation(t, db, 1, office.ID, "2022-03-25", "2022-03-29", domain.ReservationActive)
	// starts inside the window, ends after it
	r3 := seedReservation(t, db, 1, office.ID, "2022-03-25", "2022-04-15", domain.ReservationActive)
	// entirely before the window
	seedReservation(t, db, 1, office.ID, "2022-02-20", "2022-03-01", domain.ReservationActive)
	// entirely after the window
	seedReservation(t, db, 1, office.ID, "2022-04-25", "2022-05-01", domain.ReservationActive)

	list, total, err := svc.ListMine(context.Background(), 1, ListRequest{
		FromDate: "2022-03-03",
		ToDate:   "2022-04-04",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []int64{r1.ID, r2.ID, r3.ID}, ids(list))
}

func TestListMine_DateWindowBoundary(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	office := domain.Office{UserID: 99, Title: "Desk", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&office).Error)

	// ends exactly on the window start
	onStart := seedReservation(t, db, 1, office.ID, "2022-02-20", "2022-03-03", domain.ReservationActive)
	// starts exactly on the window end
	onEnd := seedReservation(t, db, 1, office.ID, "2022-04-04", "2022-04-20", domain.ReservationActive)
	// spans the whole window without either endpoint inside it
	seedReservation(t, db, 1, office.ID, "2022-02-01", "2022-05-01", domain.ReservationActive)

	list, total, err := svc.ListMine(context.Background(), 1, ListRequest{
		FromDate: "2022-03-03",
		ToDate:   "2022-04-04",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []int64{onStart.ID, onEnd.ID}, ids(list))
}

func TestListMine_OnlyOwnReservations(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	office := domain.Office{UserID: 99, Title: "Desk", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&office).Error)

	mine := seedReservation(t, db, 1, office.ID, "2026-09-10", "2026-09-14", domain.ReservationActive)
	seedReservation(t, db, 2, office.ID, "2026-09-10", "2026-09-14", domain.ReservationActive)

	list, total, err := svc.ListMine(context.Background(), 1, ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []int64{mine.ID}, ids(list))
}

func TestListMine_StatusFilter(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	office := domain.Office{UserID: 99, Title: "Desk", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&office).Error)

	active := seedReservation(t, db, 1, office.ID, "2026-09-10", "2026-09-14", domain.ReservationActive)
	cancelled := seedReservation(t, db, 1, office.ID, "2026-10-01", "2026-10-05", domain.ReservationCancelled)

	list, total, err := svc.ListMine(context.Background(), 1, ListRequest{Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []int64{active.ID}, ids(list))

	list, total, err = svc.ListMine(context.Background(), 1, ListRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []int64{cancelled.ID}, ids(list))
}

func TestListMine_StatusInvalid(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	_, _, err := svc.ListMine(context.Background(), 1, ListRequest{Status: "pending"})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "status")
}

func TestListMine_OfficeFilter(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	a := domain.Office{UserID: 99, Title: "A", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	b := domain.Office{UserID: 99, Title: "B", AddressLine1: "Somewhere 2", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	inA := seedReservation(t, db, 1, a.ID, "2026-09-10", "2026-09-14", domain.ReservationActive)
	seedReservation(t, db, 1, b.ID, "2026-09-10", "2026-09-14", domain.ReservationActive)

	list, total, err := svc.ListMine(context.Background(), 1, ListRequest{OfficeID: a.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, []int64{inA.ID}, ids(list))
}

func TestListMine_OneSidedWindowRejected(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	_, _, err := svc.ListMine(context.Background(), 1, ListRequest{FromDate: "2022-03-03"})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "to_date")

	_, _, err = svc.ListMine(context.Background(), 1, ListRequest{ToDate: "2022-04-04"})
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "from_date")
}

func TestListMine_WindowOrderRejected(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	_, _, err := svc.ListMine(context.Background(), 1, ListRequest{
		FromDate: "2022-04-04",
		ToDate:   "2022-03-03",
	})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "to_date")
}

func TestListMine_Pagination(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	office := domain.Office{UserID: 99, Title: "Desk", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&office).Error)

	for i := 0; i < 5; i++ {
		seedReservation(t, db, 1, office.ID,
			fmt.Sprintf("2026-09-%02d", i+1),
			fmt.Sprintf("2026-09-%02d", i+2),
			domain.ReservationActive)
	}

	list, total, err := svc.ListMine(context.Background(), 1, ListRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, list, 2)
}

func TestListMine_PreloadsOffice(t *testing.T) {
	db := setupDB(t)
	svc := newService(db)

	office := domain.Office{UserID: 99, Title: "Desk", AddressLine1: "Somewhere 1", PricePerDay: 1000, ApprovalStatus: domain.ApprovalApproved}
	require.NoError(t, db.Create(&office).Error)
	require.NoError(t, db.Create(&domain.OfficeImage{OfficeID: office.ID, Path: "offices/1/a.jpg"}).Error)

	seedReservation(t, db, 1, office.ID, "2026-09-10", "2026-09-14", domain.ReservationActive)

	list, _, err := svc.ListMine(context.Background(), 1, ListRequest{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Office)
	assert.Equal(t, "Desk", list[0].Office.Title)
	assert.Len(t, list[0].Office.Images, 1)
}
