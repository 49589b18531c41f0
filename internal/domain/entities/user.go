package entities

import "time"

// StaffUser is an authenticated operator account. Passwords are stored only
// as bcrypt hashes; the plaintext never reaches persistence.
//
// Storage model (DynamoDB):
//   - PK: username
type StaffUser struct {
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}
