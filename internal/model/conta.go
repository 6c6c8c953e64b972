package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de conta.
const (
	ContaCliente    = "cliente"
	ContaFornecedor = "fornecedor"
)

// Conta is a cliente or fornecedor profile that owns its own ledger of
// MovimentoConta lines. Deleting a Conta never deletes its movimentos —
// the financial history outlives the profile.
type Conta struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo string    `gorm:"type:varchar(12);not null;index"`
	Nome string    `gorm:"not null"`
	// NUIT is the tax identification number.
	NUIT      *string `gorm:"column:nuit"`
	Endereco  *string
	Contacto  *string
	Email     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Conta) TableName() string { return "contas" }
