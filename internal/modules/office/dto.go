package office

// ListRequest carries the optional list filters. Lat/Lng select the
// distance-ranked ordering mode; when absent the listing is in ascending-id
// order.
type ListRequest struct {
	UserID    int64
	VisitorID int64
	Lat       *float64
	Lng       *float64
	Page      int
	Limit     int
}

type CreateOfficeRequest struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description"`
	AddressLine1    string  `json:"address_line1" validate:"required"`
	Lat             float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng             float64 `json:"lng" validate:"gte=-180,lte=180"`
	PricePerDay     int64   `json:"price_per_day" validate:"required,gt=0"`
	MonthlyDiscount int     `json:"monthly_discount" validate:"gte=0,lte=100"`
	Hidden          bool    `json:"hidden"`
	Tags            []int64 `json:"tags,omitempty"`
}

// UpdateOfficeRequest uses pointer fields so that absent keys are
// distinguishable from zero values: only supplied fields are applied, and
// re-review is decided by diffing applied values against the stored office.
type UpdateOfficeRequest struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	AddressLine1    *string  `json:"address_line1,omitempty"`
	Lat             *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng             *float64 `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	PricePerDay     *int64   `json:"price_per_day,omitempty" validate:"omitempty,gt=0"`
	MonthlyDiscount *int     `json:"monthly_discount,omitempty" validate:"omitempty,gte=0,lte=100"`
	Hidden          *bool    `json:"hidden,omitempty"`
	FeaturedImageID *int64   `json:"featured_image_id,omitempty"`
	Tags            *[]int64 `json:"tags,omitempty"`
}
