package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarContaRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=1"`
	NUIT     *string `json:"nuit"`
	Endereco *string `json:"endereco"`
	Contacto *string `json:"contacto"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

type ActualizarContaRequest struct {
	Nome     string  `json:"nome"     validate:"omitempty,min=1"`
	NUIT     *string `json:"nuit"`
	Endereco *string `json:"endereco"`
	Contacto *string `json:"contacto"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ContaResponse struct {
	ID       string  `json:"id"`
	Tipo     string  `json:"tipo"`
	Nome     string  `json:"nome"`
	NUIT     *string `json:"nuit"`
	Endereco *string `json:"endereco"`
	Contacto *string `json:"contacto"`
	Email    *string `json:"email"`
}

// ResumoContaResponse aggregates one conta's ledger: current saldo plus
// full-history entrada/saida totals (not limited to the current year).
type ResumoContaResponse struct {
	ContaID       string          `json:"conta_id"`
	SaldoAtual    decimal.Decimal `json:"saldo_atual"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
}
