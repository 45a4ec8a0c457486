package repository

import "errors"

// Sentinel errors returned by store implementations. Any other error
// from a repository method means the store itself failed.
var (
	ErrNotFound = errors.New("record not found")
	// ErrHasTasks is returned by UserRepository.Delete when at least one
	// task still references the user.
	ErrHasTasks = errors.New("user has dependent tasks")
)
