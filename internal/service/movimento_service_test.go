package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"livrocaixa/internal/model"
	"livrocaixa/internal/repository"
	"livrocaixa/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory ContaRepository ────────────────────────────────────────────────

type fakeContaRepo struct {
	contas []model.Conta
}

func (r *fakeContaRepo) List(_ context.Context, tipo string) ([]model.Conta, error) {
	var out []model.Conta
	for _, c := range r.contas {
		if c.Tipo == tipo {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

func (r *fakeContaRepo) FindByID(_ context.Context, tipo string, id uuid.UUID) (*model.Conta, error) {
	for _, c := range r.contas {
		if c.Tipo == tipo && c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeContaRepo) Create(_ context.Context, c *model.Conta) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.contas = append(r.contas, *c)
	return nil
}

func (r *fakeContaRepo) Update(_ context.Context, c *model.Conta) error {
	for i := range r.contas {
		if r.contas[i].ID == c.ID {
			r.contas[i] = *c
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeContaRepo) Delete(_ context.Context, tipo string, id uuid.UUID) (bool, error) {
	for i := range r.contas {
		if r.contas[i].Tipo == tipo && r.contas[i].ID == id {
			r.contas = append(r.contas[:i], r.contas[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ repository.ContaRepository = (*fakeContaRepo)(nil)

// ── In-memory MovimentoRepository ────────────────────────────────────────────

type fakeMovimentoRepo struct {
	movs   []model.MovimentoConta
	contas *fakeContaRepo
	seq    int
	base   time.Time
}

func newFakeMovimentoRepo(contas *fakeContaRepo) *fakeMovimentoRepo {
	return &fakeMovimentoRepo{
		contas: contas,
		base:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func ordenaMovs(movs []model.MovimentoConta) {
	sort.SliceStable(movs, func(i, j int) bool {
		if !movs[i].Data.Equal(movs[j].Data) {
			return movs[i].Data.After(movs[j].Data)
		}
		return movs[i].CreatedAt.After(movs[j].CreatedAt)
	})
}

func (r *fakeMovimentoRepo) List(_ context.Context, contaID uuid.UUID) ([]model.MovimentoConta, error) {
	var out []model.MovimentoConta
	for _, m := range r.movs {
		if m.ContaID == contaID {
			out = append(out, m)
		}
	}
	ordenaMovs(out)
	return out, nil
}

func (r *fakeMovimentoRepo) FindHead(_ context.Context, contaID uuid.UUID) (*model.MovimentoConta, error) {
	var candidatos []model.MovimentoConta
	for _, m := range r.movs {
		if m.ContaID == contaID {
			candidatos = append(candidatos, m)
		}
	}
	if len(candidatos) == 0 {
		return nil, nil
	}
	ordenaMovs(candidatos)
	head := candidatos[0]
	return &head, nil
}

func (r *fakeMovimentoRepo) FindHeadExcluding(_ context.Context, contaID, id uuid.UUID) (*model.MovimentoConta, error) {
	var candidatos []model.MovimentoConta
	for _, m := range r.movs {
		if m.ContaID == contaID && m.ID != id {
			candidatos = append(candidatos, m)
		}
	}
	if len(candidatos) == 0 {
		return nil, nil
	}
	ordenaMovs(candidatos)
	head := candidatos[0]
	return &head, nil
}

func (r *fakeMovimentoRepo) FindByID(_ context.Context, contaID, id uuid.UUID) (*model.MovimentoConta, error) {
	for _, m := range r.movs {
		if m.ContaID == contaID && m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMovimentoRepo) Create(_ context.Context, m *model.MovimentoConta) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.seq++
	m.CreatedAt = r.base.Add(time.Duration(r.seq) * time.Second)
	r.movs = append(r.movs, *m)
	return nil
}

func (r *fakeMovimentoRepo) Update(_ context.Context, m *model.MovimentoConta) error {
	for i := range r.movs {
		if r.movs[i].ID == m.ID {
			r.movs[i] = *m
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeMovimentoRepo) Delete(_ context.Context, contaID, id uuid.UUID) (bool, error) {
	for i := range r.movs {
		if r.movs[i].ContaID == contaID && r.movs[i].ID == id {
			r.movs = append(r.movs[:i], r.movs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovimentoRepo) SumPorMes(_ context.Context, tipoConta string, ano int) ([]repository.TotalMensal, error) {
	porMes := map[int]*repository.TotalMensal{}
	for _, m := range r.movs {
		conta, err := r.contas.FindByID(context.Background(), tipoConta, m.ContaID)
		if err != nil || conta == nil {
			continue
		}
		if m.Ano != ano {
			continue
		}
		t, ok := porMes[m.Mes]
		if !ok {
			t = &repository.TotalMensal{Mes: m.Mes, Entrada: decimal.Zero, Saida: decimal.Zero}
			porMes[m.Mes] = t
		}
		t.Entrada = t.Entrada.Add(m.Entrada)
		t.Saida = t.Saida.Add(m.Saida)
	}
	var out []repository.TotalMensal
	for _, t := range porMes {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Mes < out[j].Mes })
	return out, nil
}

func (r *fakeMovimentoRepo) SumTotais(_ context.Context, contaID uuid.UUID) (repository.TotaisConta, error) {
	t := repository.TotaisConta{Entrada: decimal.Zero, Saida: decimal.Zero}
	for _, m := range r.movs {
		if m.ContaID == contaID {
			t.Entrada = t.Entrada.Add(m.Entrada)
			t.Saida = t.Saida.Add(m.Saida)
		}
	}
	return t, nil
}

var _ repository.MovimentoRepository = (*fakeMovimentoRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func novaConta(repo *fakeContaRepo, tipo, nome string) uuid.UUID {
	c := model.Conta{Tipo: tipo, Nome: nome}
	_ = repo.Create(context.Background(), &c)
	return c.ID
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCriarMovimentoDerivaMesEAno(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	id := novaConta(contas, model.ContaCliente, "Mercearia Central")

	mov, err := svc.Criar(context.Background(), model.ContaCliente, id, lancamento("2025-07-15", 12000, 0))

	require.NoError(t, err)
	assert.Equal(t, 7, mov.Mes)
	assert.Equal(t, 2025, mov.Ano)
	assert.Equal(t, "12000", mov.Saldo.String())
}

func TestMovimentosAcumulamPorConta(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	a := novaConta(contas, model.ContaCliente, "Conta A")
	b := novaConta(contas, model.ContaCliente, "Conta B")

	_, err := svc.Criar(context.Background(), model.ContaCliente, a, lancamento("2025-07-01", 1000, 0))
	require.NoError(t, err)
	segundo, err := svc.Criar(context.Background(), model.ContaCliente, a, lancamento("2025-07-02", 0, 400))
	require.NoError(t, err)
	outro, err := svc.Criar(context.Background(), model.ContaCliente, b, lancamento("2025-07-02", 50, 0))
	require.NoError(t, err)

	assert.Equal(t, "600", segundo.Saldo.String())
	// Each conta carries its own running saldo.
	assert.Equal(t, "50", outro.Saldo.String())
}

func TestMovimentoContaInexistente(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)

	_, err := svc.Criar(context.Background(), model.ContaCliente, uuid.New(), lancamento("2025-07-01", 100, 0))
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
}

func TestMovimentoTipoErrado(t *testing.T) {
	// A fornecedor route must not reach a cliente's movimentos.
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	id := novaConta(contas, model.ContaCliente, "Cliente X")

	_, err := svc.Listar(context.Background(), model.ContaFornecedor, id)
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
}

func TestActualizarMovimentoReposicionaMes(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	id := novaConta(contas, model.ContaCliente, "Cliente X")

	mov, err := svc.Criar(context.Background(), model.ContaCliente, id, lancamento("2025-07-15", 500, 0))
	require.NoError(t, err)

	editado, err := svc.Actualizar(context.Background(), model.ContaCliente, id, uuid.MustParse(mov.ID), lancamento("2025-08-02", 500, 0))
	require.NoError(t, err)
	assert.Equal(t, 8, editado.Mes)
	assert.Equal(t, 2025, editado.Ano)
}

func TestResumoConta(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	id := novaConta(contas, model.ContaFornecedor, "Fornecedor Y")

	_, err := svc.Criar(context.Background(), model.ContaFornecedor, id, lancamento("2025-07-01", 10000, 0))
	require.NoError(t, err)
	_, err = svc.Criar(context.Background(), model.ContaFornecedor, id, lancamento("2025-07-10", 0, 3500))
	require.NoError(t, err)

	resumo, err := svc.Resumo(context.Background(), model.ContaFornecedor, id)
	require.NoError(t, err)
	assert.Equal(t, "6500", resumo.SaldoAtual.String())
	assert.Equal(t, "10000", resumo.TotalEntradas.String())
	assert.Equal(t, "3500", resumo.TotalSaidas.String())
}

func TestResumoContaSemMovimentos(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	id := novaConta(contas, model.ContaCliente, "Cliente Novo")

	resumo, err := svc.Resumo(context.Background(), model.ContaCliente, id)
	require.NoError(t, err)
	assert.True(t, resumo.SaldoAtual.IsZero())
	assert.True(t, resumo.TotalEntradas.IsZero())
	assert.True(t, resumo.TotalSaidas.IsZero())
}

func TestEliminarMovimentoInexistente(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewMovimentoService(newFakeMovimentoRepo(contas), contas)
	id := novaConta(contas, model.ContaCliente, "Cliente X")

	err := svc.Eliminar(context.Background(), model.ContaCliente, id, uuid.New())
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
}
