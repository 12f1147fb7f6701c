package models

import (
	"strings"
	"time"
)

type Contact struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"date"`
}

func (c *Contact) OwnerID() string { return c.UserID }

// ContactInput is the body of a create request.
type ContactInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

// ContactPatch is the body of an update request. Empty fields are left
// untouched.
type ContactPatch struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Type  string `json:"type"`
}

func (p ContactPatch) IsEmpty() bool {
	return p == ContactPatch{}
}

// Apply copies the non-empty fields of p onto c and reports whether c
// changed.
func (p ContactPatch) Apply(c *Contact) bool {
	changed := false
	set := func(dst *string, v string) {
		if strings.TrimSpace(v) != "" && *dst != v {
			*dst = v
			changed = true
		}
	}
	set(&c.Name, p.Name)
	set(&c.Email, p.Email)
	set(&c.Phone, p.Phone)
	set(&c.Type, p.Type)
	return changed
}
