package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"created_at"`
}

// Public returns a copy of u without the password hash.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

// AuthResult is what register and login hand back to the caller.
type AuthResult struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}
