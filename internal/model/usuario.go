package model

import (
	"time"

	"github.com/google/uuid"
)

// Usuario is the administrative login. The application ships with a single
// shared admin account created by cmd/seedadmin; there is no self-service
// registration.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Nome         string    `gorm:"not null;default:'Admin'"`
	Activo       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
