package domain

import "time"

// User is a credential record. SubjectID (an email address) is unique
// across all records; PasswordHash is opaque bcrypt output and must never
// be logged or returned on the wire.
type User struct {
	ID           string
	SubjectID    string
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
