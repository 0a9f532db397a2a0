package reservation

// ListRequest carries the optional reservation filters as raw query values;
// the service parses and validates them.
type ListRequest struct {
	Status   string
	OfficeID int64
	FromDate string
	ToDate   string
	Page     int
	Limit    int
}
