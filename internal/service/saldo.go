package service

import (
	"sync"
	"time"

	"livrocaixa/internal/dto"
	"livrocaixa/internal/model"

	"github.com/shopspring/decimal"
)

// SaldoHeadRelativo is the product's documented balance policy: a new line's
// saldo is the current head line's saldo plus entrada minus saida, where the
// head is whatever line sorts first by (data DESC, created_at DESC).
//
// The accumulation is forward-only. A back-dated line still builds on the
// head's saldo and no existing line is ever recomputed — on insert, edit of a
// non-head line, or delete. Callers and the stored history depend on these
// semantics; do not replace this with a chronological replay.
type SaldoHeadRelativo struct{}

// Proximo computes the saldo for a line appended after the given head saldo.
func (SaldoHeadRelativo) Proximo(saldoHead, entrada, saida decimal.Decimal) decimal.Decimal {
	return saldoHead.Add(entrada).Sub(saida)
}

// travaLivros hands out one mutex per conceptual ledger so that the
// read-head-then-write sequence in Criar/Actualizar is serialized per
// ledger. Without it two concurrent appends would read the same head saldo
// and one result would silently go stale.
type travaLivros struct {
	mu     sync.Mutex
	travas map[string]*sync.Mutex
}

func novaTravaLivros() *travaLivros {
	return &travaLivros{travas: make(map[string]*sync.Mutex)}
}

// Trancar locks the ledger identified by chave and returns its unlock func.
func (t *travaLivros) Trancar(chave string) func() {
	t.mu.Lock()
	trava, ok := t.travas[chave]
	if !ok {
		trava = &sync.Mutex{}
		t.travas[chave] = trava
	}
	t.mu.Unlock()

	trava.Lock()
	return trava.Unlock
}

// parseData parses the wire date form used by every lançamento.
func parseData(s string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrDataInvalida
	}
	return d, nil
}

// preencherLancamento builds the embedded line from a draft, applying the
// defaulting rules: documento/entidade fall back to "-", entrada/saida to 0.
func preencherLancamento(req dto.LancamentoRequest) (model.Lancamento, error) {
	data, err := parseData(req.Data)
	if err != nil {
		return model.Lancamento{}, err
	}
	documento := req.Documento
	if documento == "" {
		documento = "-"
	}
	entidade := req.Entidade
	if entidade == "" {
		entidade = "-"
	}
	return model.Lancamento{
		NOrdem:     req.NOrdem,
		Data:       data,
		Descricao:  req.Descricao,
		Documento:  documento,
		Entidade:   entidade,
		Entrada:    req.Entrada,
		Saida:      req.Saida,
		Observacao: req.Observacao,
	}, nil
}
