package service_test

import (
	"context"
	"testing"

	"livrocaixa/internal/dto"
	"livrocaixa/internal/model"
	"livrocaixa/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCriarContaApenasComNome(t *testing.T) {
	svc := service.NewContaService(&fakeContaRepo{})

	conta, err := svc.Criar(context.Background(), model.ContaCliente, dto.CriarContaRequest{Nome: "Mercearia Central"})

	require.NoError(t, err)
	assert.Equal(t, "Mercearia Central", conta.Nome)
	assert.Equal(t, model.ContaCliente, conta.Tipo)
	assert.Nil(t, conta.NUIT)
	assert.Nil(t, conta.Email)
}

func TestListarContasPorTipo(t *testing.T) {
	repo := &fakeContaRepo{}
	svc := service.NewContaService(repo)

	_, err := svc.Criar(context.Background(), model.ContaCliente, dto.CriarContaRequest{Nome: "Zeca"})
	require.NoError(t, err)
	_, err = svc.Criar(context.Background(), model.ContaCliente, dto.CriarContaRequest{Nome: "Ana"})
	require.NoError(t, err)
	_, err = svc.Criar(context.Background(), model.ContaFornecedor, dto.CriarContaRequest{Nome: "Importadora"})
	require.NoError(t, err)

	clientes, err := svc.Listar(context.Background(), model.ContaCliente)
	require.NoError(t, err)
	require.Len(t, clientes, 2)
	assert.Equal(t, "Ana", clientes[0].Nome)
	assert.Equal(t, "Zeca", clientes[1].Nome)
}

func TestActualizarContaParcial(t *testing.T) {
	svc := service.NewContaService(&fakeContaRepo{})

	conta, err := svc.Criar(context.Background(), model.ContaFornecedor, dto.CriarContaRequest{
		Nome:     "Importadora Lda",
		NUIT:     strPtr("400123456"),
		Contacto: strPtr("+258840000000"),
	})
	require.NoError(t, err)

	editada, err := svc.Actualizar(context.Background(), model.ContaFornecedor, uuid.MustParse(conta.ID), dto.ActualizarContaRequest{
		Contacto: strPtr("+258841111111"),
	})
	require.NoError(t, err)

	// Omitted fields keep their stored values.
	assert.Equal(t, "Importadora Lda", editada.Nome)
	require.NotNil(t, editada.NUIT)
	assert.Equal(t, "400123456", *editada.NUIT)
	require.NotNil(t, editada.Contacto)
	assert.Equal(t, "+258841111111", *editada.Contacto)
}

func TestEliminarContaNaoApagaMovimentos(t *testing.T) {
	contas := &fakeContaRepo{}
	movs := newFakeMovimentoRepo(contas)
	contaSvc := service.NewContaService(contas)
	movSvc := service.NewMovimentoService(movs, contas)

	id := novaConta(contas, model.ContaCliente, "Cliente X")
	_, err := movSvc.Criar(context.Background(), model.ContaCliente, id, lancamento("2025-07-01", 1000, 0))
	require.NoError(t, err)

	err = contaSvc.Eliminar(context.Background(), model.ContaCliente, id)
	require.NoError(t, err)

	// The conta is gone but its movimentos survive in the store.
	_, err = contaSvc.Obter(context.Background(), model.ContaCliente, id)
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)

	restantes, err := movs.List(context.Background(), id)
	require.NoError(t, err)
	assert.Len(t, restantes, 1)
}

func TestObterContaTipoErrado(t *testing.T) {
	contas := &fakeContaRepo{}
	svc := service.NewContaService(contas)
	id := novaConta(contas, model.ContaCliente, "Cliente X")

	_, err := svc.Obter(context.Background(), model.ContaFornecedor, id)
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
}

func TestEliminarContaInexistente(t *testing.T) {
	svc := service.NewContaService(&fakeContaRepo{})

	err := svc.Eliminar(context.Background(), model.ContaCliente, uuid.New())
	assert.ErrorIs(t, err, service.ErrNaoEncontrado)
}
