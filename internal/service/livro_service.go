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

// LivroService operates the global ledgers (caixa and banco).
type LivroService interface {
	Listar(ctx context.Context, livro string) ([]dto.LancamentoResponse, error)
	Criar(ctx context.Context, livro string, req dto.LancamentoRequest) (*dto.LancamentoResponse, error)
	Actualizar(ctx context.Context, livro string, id uuid.UUID, req dto.LancamentoRequest) (*dto.LancamentoResponse, error)
	Eliminar(ctx context.Context, livro string, id uuid.UUID) error
	SaldoAtual(ctx context.Context, livro string) (decimal.Decimal, error)
}

type livroService struct {
	repo   repository.LivroRepository
	saldo  SaldoHeadRelativo
	travas *travaLivros
}

func NewLivroService(repo repository.LivroRepository) LivroService {
	return &livroService{repo: repo, travas: novaTravaLivros()}
}

func validarLivro(livro string) error {
	if livro != model.LivroCaixa && livro != model.LivroBanco {
		return ErrLivroInvalido
	}
	return nil
}

func (s *livroService) Listar(ctx context.Context, livro string) ([]dto.LancamentoResponse, error) {
	if err := validarLivro(livro); err != nil {
		return nil, err
	}
	lancs, err := s.repo.List(ctx, livro)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LancamentoResponse, len(lancs))
	for i, l := range lancs {
		resp[i] = lancamentoLivroResponse(&l)
	}
	return resp, nil
}

func (s *livroService) Criar(ctx context.Context, livro string, req dto.LancamentoRequest) (*dto.LancamentoResponse, error) {
	if err := validarLivro(livro); err != nil {
		return nil, err
	}
	linha, err := preencherLancamento(req)
	if err != nil {
		return nil, err
	}

	destrancar := s.travas.Trancar(livro)
	defer destrancar()

	head, err := s.repo.FindHead(ctx, livro)
	if err != nil {
		return nil, err
	}
	saldoHead := decimal.Zero
	if head != nil {
		saldoHead = head.Saldo
	}
	linha.Saldo = s.saldo.Proximo(saldoHead, linha.Entrada, linha.Saida)

	lanc := &model.LancamentoLivro{Livro: livro, Lancamento: linha}
	if err := s.repo.Create(ctx, lanc); err != nil {
		return nil, err
	}
	resp := lancamentoLivroResponse(lanc)
	return &resp, nil
}

func (s *livroService) Actualizar(ctx context.Context, livro string, id uuid.UUID, req dto.LancamentoRequest) (*dto.LancamentoResponse, error) {
	if err := validarLivro(livro); err != nil {
		return nil, err
	}
	linha, err := preencherLancamento(req)
	if err != nil {
		return nil, err
	}

	destrancar := s.travas.Trancar(livro)
	defer destrancar()

	lanc, err := s.repo.FindByID(ctx, livro, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}

	// Only the head line gets its saldo recomputed on edit. Editing any
	// other line keeps the stored saldo even when entrada/saida change.
	head, err := s.repo.FindHead(ctx, livro)
	if err != nil {
		return nil, err
	}
	if head != nil && head.ID == id {
		anterior, err := s.repo.FindHeadExcluding(ctx, livro, id)
		if err != nil {
			return nil, err
		}
		saldoAnterior := decimal.Zero
		if anterior != nil {
			saldoAnterior = anterior.Saldo
		}
		linha.Saldo = s.saldo.Proximo(saldoAnterior, linha.Entrada, linha.Saida)
	} else {
		linha.Saldo = lanc.Saldo
	}

	lanc.Lancamento = linha
	if err := s.repo.Update(ctx, lanc); err != nil {
		return nil, err
	}
	resp := lancamentoLivroResponse(lanc)
	return &resp, nil
}

func (s *livroService) Eliminar(ctx context.Context, livro string, id uuid.UUID) error {
	if err := validarLivro(livro); err != nil {
		return err
	}
	// No saldo repair of the remaining lines — deletes leave history as-is.
	existiu, err := s.repo.Delete(ctx, livro, id)
	if err != nil {
		return err
	}
	if !existiu {
		return ErrNaoEncontrado
	}
	return nil
}

func (s *livroService) SaldoAtual(ctx context.Context, livro string) (decimal.Decimal, error) {
	if err := validarLivro(livro); err != nil {
		return decimal.Zero, err
	}
	head, err := s.repo.FindHead(ctx, livro)
	if err != nil {
		return decimal.Zero, err
	}
	if head == nil {
		return decimal.Zero, nil
	}
	return head.Saldo, nil
}

func lancamentoLivroResponse(l *model.LancamentoLivro) dto.LancamentoResponse {
	return dto.LancamentoResponse{
		ID:         l.ID.String(),
		NOrdem:     l.NOrdem,
		Data:       l.Data.Format("2006-01-02"),
		Descricao:  l.Descricao,
		Documento:  l.Documento,
		Entidade:   l.Entidade,
		Entrada:    l.Entrada,
		Saida:      l.Saida,
		Saldo:      l.Saldo,
		Observacao: l.Observacao,
		CreatedAt:  l.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
