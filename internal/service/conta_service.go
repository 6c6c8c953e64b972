package service

import (
	"context"
	"errors"

	"livrocaixa/internal/dto"
	"livrocaixa/internal/model"
	"livrocaixa/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContaService manages cliente/fornecedor profiles.
type ContaService interface {
	Listar(ctx context.Context, tipo string) ([]dto.ContaResponse, error)
	Obter(ctx context.Context, tipo string, id uuid.UUID) (*dto.ContaResponse, error)
	Criar(ctx context.Context, tipo string, req dto.CriarContaRequest) (*dto.ContaResponse, error)
	Actualizar(ctx context.Context, tipo string, id uuid.UUID, req dto.ActualizarContaRequest) (*dto.ContaResponse, error)
	Eliminar(ctx context.Context, tipo string, id uuid.UUID) error
}

type contaService struct {
	repo repository.ContaRepository
}

func NewContaService(repo repository.ContaRepository) ContaService {
	return &contaService{repo: repo}
}

func (s *contaService) Listar(ctx context.Context, tipo string) ([]dto.ContaResponse, error) {
	contas, err := s.repo.List(ctx, tipo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ContaResponse, len(contas))
	for i, c := range contas {
		resp[i] = contaResponse(&c)
	}
	return resp, nil
}

func (s *contaService) Obter(ctx context.Context, tipo string, id uuid.UUID) (*dto.ContaResponse, error) {
	conta, err := s.repo.FindByID(ctx, tipo, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	resp := contaResponse(conta)
	return &resp, nil
}

func (s *contaService) Criar(ctx context.Context, tipo string, req dto.CriarContaRequest) (*dto.ContaResponse, error) {
	conta := &model.Conta{
		Tipo:     tipo,
		Nome:     req.Nome,
		NUIT:     req.NUIT,
		Endereco: req.Endereco,
		Contacto: req.Contacto,
		Email:    req.Email,
	}
	if err := s.repo.Create(ctx, conta); err != nil {
		return nil, err
	}
	resp := contaResponse(conta)
	return &resp, nil
}

func (s *contaService) Actualizar(ctx context.Context, tipo string, id uuid.UUID, req dto.ActualizarContaRequest) (*dto.ContaResponse, error) {
	conta, err := s.repo.FindByID(ctx, tipo, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if req.Nome != "" {
		conta.Nome = req.Nome
	}
	if req.NUIT != nil {
		conta.NUIT = req.NUIT
	}
	if req.Endereco != nil {
		conta.Endereco = req.Endereco
	}
	if req.Contacto != nil {
		conta.Contacto = req.Contacto
	}
	if req.Email != nil {
		conta.Email = req.Email
	}
	if err := s.repo.Update(ctx, conta); err != nil {
		return nil, err
	}
	resp := contaResponse(conta)
	return &resp, nil
}

// Eliminar removes the profile only. Its movimentos stay in the store so the
// financial history survives the conta.
func (s *contaService) Eliminar(ctx context.Context, tipo string, id uuid.UUID) error {
	existiu, err := s.repo.Delete(ctx, tipo, id)
	if err != nil {
		return err
	}
	if !existiu {
		return ErrNaoEncontrado
	}
	return nil
}

func contaResponse(c *model.Conta) dto.ContaResponse {
	return dto.ContaResponse{
		ID:       c.ID.String(),
		Tipo:     c.Tipo,
		Nome:     c.Nome,
		NUIT:     c.NUIT,
		Endereco: c.Endereco,
		Contacto: c.Contacto,
		Email:    c.Email,
	}
}
