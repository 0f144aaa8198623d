package repository

import "errors"

// Storage-level sentinels. The service layer translates these into the
// domain error taxonomy.
var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrBusinessNotFound = errors.New("business not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrDuplicateEmail   = errors.New("email already exists")
	ErrPersonAssigned   = errors.New("person already assigned to job")
)
