package engine

import (
	"errors"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Validation errors returned by the value types and Record.
var (
	ErrEmptyName         = errors.New(config.ErrEmptyName)
	ErrInvalidPhone      = errors.New(config.ErrInvalidPhone)
	ErrInvalidDate       = errors.New(config.ErrInvalidDate)
	ErrUnknownDateFormat = errors.New(config.ErrUnknownDateFormat)
	ErrPhoneNotFound     = errors.New(config.ErrPhoneNotFound)
)
