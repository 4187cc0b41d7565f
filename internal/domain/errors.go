package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrItemNotFound  = errors.New("storage item not found")
)

var (
	ErrEventExists = errors.New("event with this id already exists")
)

var (
	ErrValidation = errors.New("validation error")
)
