package domain

import "time"

// User is an operator account allowed to log in. Provisioned out of band
// (see cmd/seed); never mutated by the request path.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
