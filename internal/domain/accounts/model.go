package accounts

import "time"

const (
	MaxUsernameLen    = 150
	MinPasswordLength = 8
)

type User struct {
	ID           string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
