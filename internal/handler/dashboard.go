package handler

import (
	"net/http"
	"strconv"
	"time"

	"livrocaixa/internal/apierror"
	"livrocaixa/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Snapshot godoc
// @Summary Devolve o resumo consolidado para o dashboard
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param ano query int false "Ano alvo (por omissão, o corrente)"
// @Success 200 {object} dto.DashboardResponse
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Snapshot(c *gin.Context) {
	ano, err := strconv.Atoi(c.DefaultQuery("ano", strconv.Itoa(time.Now().Year())))
	if err != nil || ano < 1 {
		c.JSON(http.StatusBadRequest, apierror.New("ano inválido"))
		return
	}
	resp, err := h.svc.Snapshot(c.Request.Context(), ano)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
