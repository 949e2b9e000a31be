package handler

import (
	"net/http"

	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	svc service.ReporteService
}

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Stats godoc
// @Summary Agregados del panel principal
// @Tags reportes
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /api/stats [get]
func (h *ReportesHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
