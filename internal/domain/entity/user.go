package entity

import "time"

// User represents a login account. The username is the natural key; the
// numeric ID is assigned by the store on insert.
// Passwords are stored as-is: the login flow compares them byte for byte.
type User struct {
	ID        int64
	Username  string
	Password  string
	Email     string
	FullName  string
	CreatedAt time.Time
}
