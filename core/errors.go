package core

import "errors"

var (
	// ErrNotFound is returned when a requested piece of content does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidContent is returned when a content file lacks required front-matter.
	ErrInvalidContent = errors.New("invalid content")

	// ErrInvalidLead is returned when a lead submission fails validation.
	ErrInvalidLead = errors.New("invalid lead")

	// ErrLeadPersistence is returned when a lead could not be appended to its sink.
	ErrLeadPersistence = errors.New("lead could not be persisted")
)
