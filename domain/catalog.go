package domain

import (
	"strings"
	"time"
)

// User is a catalog member returned by the users endpoints.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the fields required to store a user.
func (u *User) Validate() error {
	if u == nil || strings.TrimSpace(u.Name) == "" {
		return NewError(ErrCodeInvalid, "name is required")
	}
	if u.Email != "" && !strings.Contains(u.Email, "@") {
		return NewError(ErrCodeInvalid, "email is malformed")
	}
	return nil
}

// Book is a catalog entry returned by the books endpoint.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year,omitempty"`
}
