package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LancamentoRequest is the draft for creating or editing a ledger line.
// Data uses the "2006-01-02" calendar form. Entrada/Saida default to zero
// when absent; Documento and Entidade default to "-".
type LancamentoRequest struct {
	NOrdem     string          `json:"n_ordem"`
	Data       string          `json:"data"       validate:"required,datetime=2006-01-02"`
	Descricao  string          `json:"descricao"  validate:"required,min=1"`
	Documento  string          `json:"documento"`
	Entidade   string          `json:"entidade"`
	Entrada    decimal.Decimal `json:"entrada"    validate:"min=0"`
	Saida      decimal.Decimal `json:"saida"      validate:"min=0"`
	Observacao string          `json:"observacao"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LancamentoResponse struct {
	ID         string          `json:"id"`
	NOrdem     string          `json:"n_ordem"`
	Data       string          `json:"data"`
	Descricao  string          `json:"descricao"`
	Documento  string          `json:"documento"`
	Entidade   string          `json:"entidade"`
	Entrada    decimal.Decimal `json:"entrada"`
	Saida      decimal.Decimal `json:"saida"`
	Saldo      decimal.Decimal `json:"saldo"`
	Observacao string          `json:"observacao"`
	CreatedAt  string          `json:"created_at"`
}

// MovimentoResponse is a LancamentoResponse owned by a Conta, with the
// mes/ano derived from the entry date at write time.
type MovimentoResponse struct {
	LancamentoResponse
	ContaID string `json:"conta_id"`
	Mes     int    `json:"mes"`
	Ano     int    `json:"ano"`
}

type SaldoResponse struct {
	Saldo decimal.Decimal `json:"saldo"`
}
