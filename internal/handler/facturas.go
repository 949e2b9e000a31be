package handler

import (
	"errors"
	"net/http"

	"github.com/Dadminete/dbsismovil/internal/apierror"
	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FacturasHandler struct {
	facturas repository.FacturaRepository
}

func NewFacturasHandler(facturas repository.FacturaRepository) *FacturasHandler {
	return &FacturasHandler{facturas: facturas}
}

// Actualizar godoc
// @Summary Edición manual de una factura
// @Tags facturas
// @Accept json
// @Produce json
// @Param id path string true "ID de la factura"
// @Param body body dto.ActualizarFacturaRequest true "Campos editables"
// @Success 200 {object} dto.FacturaResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/invoices/{id} [patch]
func (h *FacturasHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}

	factura, err := h.facturas.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Factura no encontrada"))
			return
		}
		c.Error(err)
		return
	}

	// Manual override: the estado set here stands until the next payment
	// posting rederives it.
	factura.Estado = req.Estado
	factura.Total = req.Total
	factura.Observaciones = req.Observaciones

	if err := h.facturas.Update(c.Request.Context(), factura); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, facturaToResponse(factura))
}
