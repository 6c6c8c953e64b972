package handler

import (
	"fmt"
	"net/http"

	"livrocaixa/internal/apierror"
	"livrocaixa/internal/dto"
	"livrocaixa/internal/infra"
	"livrocaixa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MovimentosHandler serves one conta family's per-conta ledgers.
type MovimentosHandler struct {
	svc    service.MovimentoService
	contas service.ContaService
	tipo   string
}

func NewMovimentosHandler(svc service.MovimentoService, contas service.ContaService, tipo string) *MovimentosHandler {
	return &MovimentosHandler{svc: svc, contas: contas, tipo: tipo}
}

func (h *MovimentosHandler) contaID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de conta inválido"))
		return uuid.Nil, false
	}
	return id, true
}

// Listar godoc
// @Summary Lista os movimentos de uma conta, mais recentes primeiro
// @Tags movimentos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da conta"
// @Success 200 {array} dto.MovimentoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/clientes/{id}/movimentos [get]
func (h *MovimentosHandler) Listar(c *gin.Context) {
	contaID, ok := h.contaID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), h.tipo, contaID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Criar godoc
// @Summary Regista um movimento na conta e calcula o saldo corrente
// @Tags movimentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da conta"
// @Param body body dto.LancamentoRequest true "Movimento"
// @Success 201 {object} dto.MovimentoResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/clientes/{id}/movimentos [post]
func (h *MovimentosHandler) Criar(c *gin.Context) {
	contaID, ok := h.contaID(c)
	if !ok {
		return
	}
	var req dto.LancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), h.tipo, contaID, req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MovimentosHandler) Actualizar(c *gin.Context) {
	contaID, ok := h.contaID(c)
	if !ok {
		return
	}
	movID, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de movimento inválido"))
		return
	}
	var req dto.LancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), h.tipo, contaID, movID, req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MovimentosHandler) Eliminar(c *gin.Context) {
	contaID, ok := h.contaID(c)
	if !ok {
		return
	}
	movID, err := uuid.Parse(c.Param("mid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de movimento inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), h.tipo, contaID, movID); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Resumo returns the conta's current saldo plus full-history totals.
func (h *MovimentosHandler) Resumo(c *gin.Context) {
	contaID, ok := h.contaID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Resumo(c.Request.Context(), h.tipo, contaID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Extrato streams the conta's statement as a PDF attachment.
func (h *MovimentosHandler) Extrato(c *gin.Context) {
	contaID, ok := h.contaID(c)
	if !ok {
		return
	}
	conta, err := h.contas.Obter(c.Request.Context(), h.tipo, contaID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	movs, err := h.svc.Listar(c.Request.Context(), h.tipo, contaID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	lancs := make([]dto.LancamentoResponse, len(movs))
	for i, m := range movs {
		lancs[i] = m.LancamentoResponse
	}
	pdf, err := infra.GerarExtratoPDF(conta.Nome, lancs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=extrato_%s.pdf", contaID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
