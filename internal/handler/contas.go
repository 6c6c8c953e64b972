package handler

import (
	"net/http"

	"livrocaixa/internal/apierror"
	"livrocaixa/internal/dto"
	"livrocaixa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContasHandler serves one conta family. The router mounts one instance for
// clientes and one for fornecedores; tipo is fixed per instance.
type ContasHandler struct {
	svc  service.ContaService
	tipo string
}

func NewContasHandler(svc service.ContaService, tipo string) *ContasHandler {
	return &ContasHandler{svc: svc, tipo: tipo}
}

// Listar godoc
// @Summary Lista os perfis de conta, ordenados por nome
// @Tags contas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ContaResponse
// @Router /v1/clientes [get]
func (h *ContasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), h.tipo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContasHandler) Criar(c *gin.Context) {
	var req dto.CriarContaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), h.tipo, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContasHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.ActualizarContaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), h.tipo, id, req)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar removes the profile; its movimentos are deliberately kept.
func (h *ContasHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), h.tipo, id); err != nil {
		writeLedgerError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
