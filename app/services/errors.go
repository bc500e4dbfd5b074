package services

import "errors"

// Error kinds shared by every service. Services wrap these with context via
// fmt.Errorf("%w: ..."), controllers match them with errors.Is and map them to
// 400, 401 and 404.
var (
	ErrValidation = errors.New("validation failed")
	ErrAuth       = errors.New("authentication failed")
	ErrNotFound   = errors.New("not found")
)
