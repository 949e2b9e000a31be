package handler

import (
	"errors"
	"net/http"

	"github.com/Dadminete/dbsismovil/internal/apierror"
	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/gin-gonic/gin"
)

type PagosHandler struct {
	svc service.PagoService
}

func NewPagosHandler(svc service.PagoService) *PagosHandler {
	return &PagosHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra un pago contra una factura
// @Tags pagos
// @Accept json
// @Produce json
// @Param body body dto.RegistrarPagoRequest true "Pago"
// @Success 201 {object} dto.RegistrarPagoResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/payments [post]
func (h *PagosHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrFacturaNoEncontrada) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
