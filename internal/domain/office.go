package domain

import "time"

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type Office struct {
	ID              int64          `json:"id"`
	UserID          int64          `json:"user_id"`
	Title           string         `json:"title" validate:"required"`
	Description     string         `json:"description,omitempty"`
	AddressLine1    string         `json:"address_line1" validate:"required"`
	Lat             float64        `json:"lat"`
	Lng             float64        `json:"lng"`
	PricePerDay     int64          `json:"price_per_day"`   // minor currency units
	MonthlyDiscount int            `json:"monthly_discount"` // percentage 0-100
	Hidden          bool           `json:"hidden"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	FeaturedImageID *int64         `json:"featured_image_id,omitempty"`
	DeletedAt       *time.Time     `json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	// Relations (loaded separately)
	Images []OfficeImage `json:"images,omitempty" gorm:"foreignKey:OfficeID"`
	Tags   []Tag         `json:"tags" gorm:"many2many:office_tags"`
	User   *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`

	// Annotated by the list/show queries, not a column.
	ReservationsCount int64 `json:"reservations_count" gorm:"->;-:migration"`
}

func (Office) TableName() string { return "offices" }

type OfficeImage struct {
	ID        int64     `json:"id"`
	OfficeID  int64     `json:"office_id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

func (OfficeImage) TableName() string { return "office_images" }

type Tag struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
}

func (Tag) TableName() string { return "tags" }
