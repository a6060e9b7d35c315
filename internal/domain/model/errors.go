package model

import "errors"

var (
	// ErrValidation is returned when a value has the right kind but the wrong shape,
	// e.g. a title that is too short or an empty author name.
	ErrValidation = errors.New("validation failed")

	// ErrWrongType is returned when a value is not of the expected kind, e.g. an article
	// assigned to an author that was never constructed.
	ErrWrongType = errors.New("wrong type")

	// ErrMagazineNameType is returned when a magazine name is not text at all.
	// It is deliberately not an ErrWrongType.
	ErrMagazineNameType = errors.New("magazine name must be a non-empty string")
)
