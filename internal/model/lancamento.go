package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Livros globais suportados.
const (
	LivroCaixa = "caixa"
	LivroBanco = "banco"
)

// Lancamento is one line of a ledger: date, description, inflow (entrada),
// outflow (saida) and the running saldo computed at write time.
// It is embedded by both the global ledgers and the per-conta movimentos.
type Lancamento struct {
	// NOrdem is a free-text display ordinal; never used for ordering.
	NOrdem    string          `gorm:"column:n_ordem"`
	Data      time.Time       `gorm:"type:date;not null;index"`
	Descricao string          `gorm:"not null"`
	Documento string          `gorm:"not null;default:'-'"`
	Entidade  string          `gorm:"not null;default:'-'"`
	Entrada   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Saida     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	// Saldo is the running total after this line. Computed once when the
	// line is written (or when the head line is edited) — see service.SaldoHeadRelativo.
	Saldo      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Observacao string
}

// LancamentoLivro is a line in one of the global ledgers (caixa or banco).
// Livro discriminates the ledger; within one livro the head line is the
// first by (data DESC, created_at DESC) and carries the current saldo.
type LancamentoLivro struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Livro      string    `gorm:"type:varchar(10);not null;index"`
	Lancamento `gorm:"embedded"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (LancamentoLivro) TableName() string { return "lancamentos_livro" }

// MovimentoConta is a ledger line owned by one Conta (cliente or fornecedor).
// Mes and Ano are derived from Data at write time and drive the monthly
// aggregation for the dashboard.
type MovimentoConta struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContaID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Lancamento `gorm:"embedded"`
	Mes        int       `gorm:"not null;index:idx_movimentos_ano_mes"`
	Ano        int       `gorm:"not null;index:idx_movimentos_ano_mes"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

func (MovimentoConta) TableName() string { return "movimentos_conta" }
