// Package models defines the records persisted by the server and returned
// over the API.
package models

import "time"

// User is an account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"date"`
}
