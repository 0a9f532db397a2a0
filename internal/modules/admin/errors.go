package admin

import "errors"

var (
	ErrOfficeNotFound = errors.New("office not found")
	ErrNotPending     = errors.New("office is not pending approval")
)
