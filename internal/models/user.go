package models

import "github.com/google/uuid"

// User carries the bcrypt password hash; callers that expose users
// over the wire are responsible for redacting it.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
}
