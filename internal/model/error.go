package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation error")    // 400
	ErrUnauthorized = errors.New("unauthorized")        // 401
	ErrNotFound     = errors.New("not found")           // 404
	ErrConflict     = errors.New("conflict")            // 409
	ErrUnavailable  = errors.New("storage unavailable") // 503

	ErrTokenExpired = fmt.Errorf("%w: session expired", ErrUnauthorized)
)
