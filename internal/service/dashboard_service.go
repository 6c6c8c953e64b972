package service

import (
	"context"

	"livrocaixa/internal/dto"
	"livrocaixa/internal/model"
	"livrocaixa/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService produces the consolidated snapshot. Everything is
// recomputed on every call by walking all cliente contas — there is no
// cache layer, which is fine at the scale of a single small business but
// needs a rethink past a few hundred contas.
type DashboardService interface {
	Snapshot(ctx context.Context, ano int) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	livros     repository.LivroRepository
	movimentos repository.MovimentoRepository
	contas     repository.ContaRepository
}

func NewDashboardService(livros repository.LivroRepository, movimentos repository.MovimentoRepository, contas repository.ContaRepository) DashboardService {
	return &dashboardService{livros: livros, movimentos: movimentos, contas: contas}
}

func (s *dashboardService) Snapshot(ctx context.Context, ano int) (*dto.DashboardResponse, error) {
	saldoCaixa, err := s.saldoLivro(ctx, model.LivroCaixa)
	if err != nil {
		return nil, err
	}
	saldoBanco, err := s.saldoLivro(ctx, model.LivroBanco)
	if err != nil {
		return nil, err
	}

	clientes, err := s.contas.List(ctx, model.ContaCliente)
	if err != nil {
		return nil, err
	}

	saldoClientes := decimal.Zero
	totalEntradas := decimal.Zero
	totalSaidas := decimal.Zero
	for _, c := range clientes {
		head, err := s.movimentos.FindHead(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if head != nil {
			saldoClientes = saldoClientes.Add(head.Saldo)
		}
		totais, err := s.movimentos.SumTotais(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		totalEntradas = totalEntradas.Add(totais.Entrada)
		totalSaidas = totalSaidas.Add(totais.Saida)
	}

	porMes, err := s.movimentos.SumPorMes(ctx, model.ContaCliente, ano)
	if err != nil {
		return nil, err
	}
	mensal := make([]dto.TotalMensal, len(porMes))
	for i, t := range porMes {
		mensal[i] = dto.TotalMensal{Mes: t.Mes, Entrada: t.Entrada, Saida: t.Saida}
	}

	return &dto.DashboardResponse{
		Ano:           ano,
		SaldoCaixa:    saldoCaixa,
		SaldoBanco:    saldoBanco,
		SaldoClientes: saldoClientes,
		TotalEntradas: totalEntradas,
		TotalSaidas:   totalSaidas,
		Mensal:        mensal,
	}, nil
}

func (s *dashboardService) saldoLivro(ctx context.Context, livro string) (decimal.Decimal, error) {
	head, err := s.livros.FindHead(ctx, livro)
	if err != nil {
		return decimal.Zero, err
	}
	if head == nil {
		return decimal.Zero, nil
	}
	return head.Saldo, nil
}
