package entity

import (
	"time"
)

// Task references its owning user by id only. UserID is required but not
// constrained by the store: the owner may have been deleted out of band,
// so reads resolve Owner lazily and leave it nil when the reference
// dangles.
type Task struct {
	ID            string
	TaskName      string
	Description   string
	ScheduledDate time.Time
	CreatedAt     time.Time
	UserID        string

	// Owner is populated on joined reads when the referenced user still
	// exists; nil otherwise.
	Owner *User
}
