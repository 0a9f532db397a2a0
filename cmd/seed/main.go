package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"officespace/internal/database"
	"officespace/internal/domain"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "officespace.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Tag{},
		&domain.Office{},
		&domain.OfficeImage{},
		&domain.Reservation{},
		&domain.Notification{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM reservations")
	db.Exec("DELETE FROM office_images")
	db.Exec("DELETE FROM office_tags")
	db.Exec("DELETE FROM offices")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	moderatorHash, _ := bcrypt.GenerateFromPassword([]byte("moderator123"), bcrypt.DefaultCost)
	moderator := domain.User{
		Email:        "moderator@officespace.test",
		PasswordHash: string(moderatorHash),
		Role:         domain.RoleModerator,
		Name:         "Site Moderator",
	}
	db.Create(&moderator)
	log.Println("Moderator created: moderator@officespace.test / moderator123")

	hostHash, _ := bcrypt.GenerateFromPassword([]byte("host123"), bcrypt.DefaultCost)
	hosts := []domain.User{}
	for i, email := range []string{"joao@officespace.test", "maria@officespace.test"} {
		h := domain.User{
			Email:        email,
			PasswordHash: string(hostHash),
			Role:         domain.RoleHost,
			Name:         fmt.Sprintf("Host %d", i+1),
		}
		db.Create(&h)
		hosts = append(hosts, h)
	}

	visitorHash, _ := bcrypt.GenerateFromPassword([]byte("visitor123"), bcrypt.DefaultCost)
	visitors := []domain.User{}
	for i, email := range []string{"ana@officespace.test", "rui@officespace.test", "sofia@officespace.test"} {
		v := domain.User{
			Email:        email,
			PasswordHash: string(visitorHash),
			Role:         domain.RoleVisitor,
			Name:         fmt.Sprintf("Visitor %d", i+1),
		}
		db.Create(&v)
		visitors = append(visitors, v)
	}

	// ================== TAGS ==================
	log.Println("Creating tags...")
	tagNames := []string{"wifi", "parking", "coffee", "meeting room", "24/7 access", "standing desks"}
	tags := []domain.Tag{}
	for _, name := range tagNames {
		t := domain.Tag{Name: name}
		db.Create(&t)
		tags = append(tags, t)
	}

	// ================== OFFICES ==================
	log.Println("Creating offices...")

	type officeSeed struct {
		title   string
		address string
		lat     float64
		lng     float64
		price   int64
		status  domain.ApprovalStatus
		hidden  bool
	}

	seeds := []officeSeed{
		{"Baixa Central Desk", "Rua Augusta 12, Lisboa", 38.710, -9.137, 15_000, domain.ApprovalApproved, false},
		{"Alvalade Loft", "Av. de Roma 45, Lisboa", 38.752, -9.143, 22_000, domain.ApprovalApproved, false},
		{"Belem Riverside Studio", "Rua de Belem 3, Lisboa", 38.697, -9.206, 18_000, domain.ApprovalApproved, false},
		{"Parque das Nacoes Hub", "Al. dos Oceanos 80, Lisboa", 38.768, -9.097, 30_000, domain.ApprovalPending, false},
		{"Cascais Quiet Corner", "Rua Frederico Arouca 9, Cascais", 38.697, -9.421, 12_000, domain.ApprovalApproved, true},
	}

	offices := []domain.Office{}
	for i, s := range seeds {
		host := hosts[i%len(hosts)]
		o := domain.Office{
			UserID:          host.ID,
			Title:           s.title,
			Description:     "Bright coworking space with fast internet.",
			AddressLine1:    s.address,
			Lat:             s.lat,
			Lng:             s.lng,
			PricePerDay:     s.price,
			MonthlyDiscount: 10,
			Hidden:          s.hidden,
			ApprovalStatus:  s.status,
		}
		db.Create(&o)

		db.Model(&o).Association("Tags").Append(&[]domain.Tag{tags[i%len(tags)], tags[(i+1)%len(tags)]})

		img := domain.OfficeImage{OfficeID: o.ID, Path: fmt.Sprintf("offices/%d/seed.jpg", o.ID)}
		db.Create(&img)
		db.Model(&o).Update("featured_image_id", img.ID)

		offices = append(offices, o)
	}

	// ================== RESERVATIONS ==================
	log.Println("Creating reservations...")

	type resSeed struct {
		visitor int
		office  int
		from    string
		to      string
		status  domain.ReservationStatus
	}

	resSeeds := []resSeed{
		{0, 0, "2026-09-10", "2026-09-14", domain.ReservationActive},
		{0, 1, "2026-10-01", "2026-10-05", domain.ReservationActive},
		{1, 0, "2026-09-20", "2026-09-22", domain.ReservationCancelled},
		{2, 2, "2026-11-02", "2026-11-30", domain.ReservationActive},
	}

	for _, rs := range resSeeds {
		r := domain.Reservation{
			UserID:    visitors[rs.visitor].ID,
			OfficeID:  offices[rs.office].ID,
			StartDate: mustDate(rs.from),
			EndDate:   mustDate(rs.to),
			Status:    rs.status,
		}
		db.Create(&r)
	}

	log.Println("Seed complete.")
}

func mustDate(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		log.Fatal("bad seed date:", s)
	}
	return t
}
