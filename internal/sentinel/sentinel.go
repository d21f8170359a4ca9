package sentinel

import "errors"

// Sentinel dependency errors. Record stores return these (optionally
// wrapped) so services can translate them into domain errors exactly once.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
