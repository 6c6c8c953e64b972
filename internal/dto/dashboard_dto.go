package dto

import "github.com/shopspring/decimal"

// TotalMensal is one month's consolidated entrada/saida. Months without
// movimentos are omitted from the series — consumers must handle gaps.
type TotalMensal struct {
	Mes     int             `json:"mes"`
	Entrada decimal.Decimal `json:"entrada"`
	Saida   decimal.Decimal `json:"saida"`
}

// DashboardResponse is the consolidated snapshot rendered on the dashboard.
// SaldoClientes is the sum of every cliente conta's current saldo;
// TotalEntradas/TotalSaidas are full-history sums across all clientes.
type DashboardResponse struct {
	Ano           int             `json:"ano"`
	SaldoCaixa    decimal.Decimal `json:"saldo_caixa"`
	SaldoBanco    decimal.Decimal `json:"saldo_banco"`
	SaldoClientes decimal.Decimal `json:"saldo_clientes"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSaidas   decimal.Decimal `json:"total_saidas"`
	Mensal        []TotalMensal   `json:"mensal"`
}
