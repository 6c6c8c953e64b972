package service

import (
	"context"
	"errors"

	"livrocaixa/internal/dto"
	"livrocaixa/internal/model"
	"livrocaixa/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MovimentoService operates the per-conta ledgers (cliente and fornecedor
// running accounts). Every operation is scoped by tipo + contaID so a
// fornecedor route can never touch a cliente's movimentos.
type MovimentoService interface {
	Listar(ctx context.Context, tipo string, contaID uuid.UUID) ([]dto.MovimentoResponse, error)
	Criar(ctx context.Context, tipo string, contaID uuid.UUID, req dto.LancamentoRequest) (*dto.MovimentoResponse, error)
	Actualizar(ctx context.Context, tipo string, contaID, id uuid.UUID, req dto.LancamentoRequest) (*dto.MovimentoResponse, error)
	Eliminar(ctx context.Context, tipo string, contaID, id uuid.UUID) error
	// Resumo returns the conta's current saldo plus full-history
	// entrada/saida totals.
	Resumo(ctx context.Context, tipo string, contaID uuid.UUID) (*dto.ResumoContaResponse, error)
}

type movimentoService struct {
	repo   repository.MovimentoRepository
	contas repository.ContaRepository
	saldo  SaldoHeadRelativo
	travas *travaLivros
}

func NewMovimentoService(repo repository.MovimentoRepository, contas repository.ContaRepository) MovimentoService {
	return &movimentoService{repo: repo, contas: contas, travas: novaTravaLivros()}
}

func (s *movimentoService) conta(ctx context.Context, tipo string, contaID uuid.UUID) (*model.Conta, error) {
	c, err := s.contas.FindByID(ctx, tipo, contaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *movimentoService) Listar(ctx context.Context, tipo string, contaID uuid.UUID) ([]dto.MovimentoResponse, error) {
	if _, err := s.conta(ctx, tipo, contaID); err != nil {
		return nil, err
	}
	movs, err := s.repo.List(ctx, contaID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimentoResponse, len(movs))
	for i, m := range movs {
		resp[i] = movimentoResponse(&m)
	}
	return resp, nil
}

func (s *movimentoService) Criar(ctx context.Context, tipo string, contaID uuid.UUID, req dto.LancamentoRequest) (*dto.MovimentoResponse, error) {
	if _, err := s.conta(ctx, tipo, contaID); err != nil {
		return nil, err
	}
	linha, err := preencherLancamento(req)
	if err != nil {
		return nil, err
	}

	destrancar := s.travas.Trancar("conta:" + contaID.String())
	defer destrancar()

	head, err := s.repo.FindHead(ctx, contaID)
	if err != nil {
		return nil, err
	}
	saldoHead := decimal.Zero
	if head != nil {
		saldoHead = head.Saldo
	}
	linha.Saldo = s.saldo.Proximo(saldoHead, linha.Entrada, linha.Saida)

	mov := &model.MovimentoConta{
		ContaID:    contaID,
		Lancamento: linha,
		Mes:        int(linha.Data.Month()),
		Ano:        linha.Data.Year(),
	}
	if err := s.repo.Create(ctx, mov); err != nil {
		return nil, err
	}
	resp := movimentoResponse(mov)
	return &resp, nil
}

func (s *movimentoService) Actualizar(ctx context.Context, tipo string, contaID, id uuid.UUID, req dto.LancamentoRequest) (*dto.MovimentoResponse, error) {
	if _, err := s.conta(ctx, tipo, contaID); err != nil {
		return nil, err
	}
	linha, err := preencherLancamento(req)
	if err != nil {
		return nil, err
	}

	destrancar := s.travas.Trancar("conta:" + contaID.String())
	defer destrancar()

	mov, err := s.repo.FindByID(ctx, contaID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	head, err := s.repo.FindHead(ctx, contaID)
	if err != nil {
		return nil, err
	}
	if head != nil && head.ID == id {
		anterior, err := s.repo.FindHeadExcluding(ctx, contaID, id)
		if err != nil {
			return nil, err
		}
		saldoAnterior := decimal.Zero
		if anterior != nil {
			saldoAnterior = anterior.Saldo
		}
		linha.Saldo = s.saldo.Proximo(saldoAnterior, linha.Entrada, linha.Saida)
	} else {
		linha.Saldo = mov.Saldo
	}

	mov.Lancamento = linha
	mov.Mes = int(linha.Data.Month())
	mov.Ano = linha.Data.Year()
	if err := s.repo.Update(ctx, mov); err != nil {
		return nil, err
	}
	resp := movimentoResponse(mov)
	return &resp, nil
}

func (s *movimentoService) Eliminar(ctx context.Context, tipo string, contaID, id uuid.UUID) error {
	if _, err := s.conta(ctx, tipo, contaID); err != nil {
		return err
	}
	existiu, err := s.repo.Delete(ctx, contaID, id)
	if err != nil {
		return err
	}
	if !existiu {
		return ErrNaoEncontrado
	}
	return nil
}

func (s *movimentoService) Resumo(ctx context.Context, tipo string, contaID uuid.UUID) (*dto.ResumoContaResponse, error) {
	if _, err := s.conta(ctx, tipo, contaID); err != nil {
		return nil, err
	}
	head, err := s.repo.FindHead(ctx, contaID)
	if err != nil {
		return nil, err
	}
	saldo := decimal.Zero
	if head != nil {
		saldo = head.Saldo
	}
	totais, err := s.repo.SumTotais(ctx, contaID)
	if err != nil {
		return nil, err
	}
	return &dto.ResumoContaResponse{
		ContaID:       contaID.String(),
		SaldoAtual:    saldo,
		TotalEntradas: totais.Entrada,
		TotalSaidas:   totais.Saida,
	}, nil
}

func movimentoResponse(m *model.MovimentoConta) dto.MovimentoResponse {
	return dto.MovimentoResponse{
		LancamentoResponse: dto.LancamentoResponse{
			ID:         m.ID.String(),
			NOrdem:     m.NOrdem,
			Data:       m.Data.Format("2006-01-02"),
			Descricao:  m.Descricao,
			Documento:  m.Documento,
			Entidade:   m.Entidade,
			Entrada:    m.Entrada,
			Saida:      m.Saida,
			Saldo:      m.Saldo,
			Observacao: m.Observacao,
			CreatedAt:  m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		},
		ContaID: m.ContaID.String(),
		Mes:     m.Mes,
		Ano:     m.Ano,
	}
}
