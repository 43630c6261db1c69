package entity

import (
	"errors"
)

var (
	ErrDataNotFound     = errors.New("data not found")
	ErrConflictingData  = errors.New("data conflicts with existing data in unique column")
	ErrMalformedRecord  = errors.New("malformed record")
	ErrUnknownKind      = errors.New("unknown record kind")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")
)
