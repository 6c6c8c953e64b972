package handler

import (
	"errors"
	"fmt"
	"net/http"

	"livrocaixa/internal/apierror"
	"livrocaixa/internal/dto"
	"livrocaixa/internal/infra"
	"livrocaixa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LivroHandler serves one global ledger. The router mounts one instance for
// caixa and one for banco; livro is fixed per instance.
type LivroHandler struct {
	svc    service.LivroService
	livro  string
	titulo string
}

func NewLivroHandler(svc service.LivroService, livro, titulo string) *LivroHandler {
	return &LivroHandler{svc: svc, livro: livro, titulo: titulo}
}

// Listar godoc
// @Summary Lista os lançamentos do livro, mais recentes primeiro
// @Tags livros
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LancamentoResponse
// @Router /v1/caixa [get]
func (h *LivroHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), h.livro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar godoc
// @Summary Regista um novo lançamento e calcula o saldo corrente
// @Tags livros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.LancamentoRequest true "Lançamento"
// @Success 201 {object} dto.LancamentoResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/caixa [post]
func (h *LivroHandler) Criar(c *gin.Context) {
	var req dto.LancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), h.livro, req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrDataInvalida) || errors.Is(err, service.ErrLivroInvalido) {
			status = http.StatusBadRequest
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LivroHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.LancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), h.livro, id, req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LivroHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), h.livro, id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Extrato streams the ledger statement as a PDF attachment.
func (h *LivroHandler) Extrato(c *gin.Context) {
	lancs, err := h.svc.Listar(c.Request.Context(), h.livro)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	pdf, err := infra.GerarExtratoPDF(h.titulo, lancs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=extrato_%s.pdf", h.livro))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// writeLedgerError maps the service sentinels onto HTTP status codes.
func writeLedgerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrDataInvalida), errors.Is(err, service.ErrLivroInvalido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
	}
}
