package entity

import (
	"time"
)

// User is the aggregate root for the user domain. A user owns zero or
// more tasks, referenced from the task side only; the user record keeps
// no back-pointer collection.
type User struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
