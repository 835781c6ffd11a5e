package usecase

import "errors"

var (
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrNoJobsSelected     = errors.New("no jobs selected")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
