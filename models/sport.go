package models

import "github.com/google/uuid"

// Sport представляет вид спорта.
type Sport struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"`
	Slug string    `json:"slug" db:"slug"`
}
