package office

import "errors"

var (
	ErrNotFound  = errors.New("office not found")
	ErrForbidden = errors.New("forbidden")

	// Image invariant violations.
	ErrImageNotFound = errors.New("image not found")
	ErrImageNotOwned = errors.New("cannot delete/assign this image")
	ErrOnlyImage     = errors.New("cannot delete the only image")
	ErrFeaturedImage = errors.New("cannot delete featured image")

	// Deletion is blocked while active reservations exist.
	ErrActiveReservations = errors.New("office has active reservations")

	ErrUnknownTag   = errors.New("unknown tag")
	ErrDuplicateTag = errors.New("duplicate tag")

	// Field-level: featured_image_id must reference one of the office's
	// own images.
	ErrFeaturedImageNotOwned = errors.New("featured image must belong to this office")

	ErrInvalidUpload = errors.New("file type is not allowed")
	ErrEmptyUpload   = errors.New("file is empty")
)
