package catalog

import "errors"

var (
	ErrEmptyName       = errors.New("room name must not be empty")
	ErrInvalidCapacity = errors.New("room capacity must be greater than zero")
	ErrInvalidFloor    = errors.New("room floor must be greater than zero")
)
