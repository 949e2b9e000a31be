package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dadminete/dbsismovil/internal/apierror"
	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"
	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct {
	svc      service.ClienteService
	facturas repository.FacturaRepository
}

func NewClientesHandler(svc service.ClienteService, facturas repository.FacturaRepository) *ClientesHandler {
	return &ClientesHandler{svc: svc, facturas: facturas}
}

// Listar godoc
// @Summary Clientes activos con suscripción vigente
// @Tags clientes
// @Produce json
// @Success 200 {array} dto.ClienteListItem
// @Router /api/clients [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary Detalle de un cliente
// @Tags clientes
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {object} dto.ClienteDetalle
// @Failure 404 {object} apierror.APIError
// @Router /api/clients/{id} [get]
func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	cliente, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClienteNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clienteToDetalle(cliente))
}

// Actualizar godoc
// @Summary Actualiza el perfil de un cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param id path string true "ID del cliente"
// @Param body body dto.ActualizarClienteRequest true "Datos del cliente"
// @Success 200 {object} dto.ClienteDetalle
// @Failure 404 {object} apierror.APIError
// @Router /api/clients/{id} [patch]
func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}

	cliente, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrClienteNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, clienteToDetalle(cliente))
}

// ListarFacturas godoc
// @Summary Facturas de un cliente, más reciente primero
// @Tags clientes
// @Produce json
// @Param id path string true "ID del cliente"
// @Success 200 {array} dto.FacturaResponse
// @Router /api/clients/{id}/invoices [get]
func (h *ClientesHandler) ListarFacturas(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	facturas, err := h.facturas.ListByCliente(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	resp := make([]dto.FacturaResponse, len(facturas))
	for i, f := range facturas {
		resp[i] = facturaToResponse(&f)
	}
	c.JSON(http.StatusOK, resp)
}

func clienteToDetalle(cl *model.Cliente) dto.ClienteDetalle {
	d := dto.ClienteDetalle{
		ID:            cl.ID.String(),
		CodigoCliente: cl.CodigoCliente,
		Nombre:        cl.Nombre,
		Apellidos:     cl.Apellidos,
		Telefono:      cl.Telefono,
		Email:         cl.Email,
		Direccion:     cl.Direccion,
		Sexo:          cl.Sexo,
		FotoURL:       cl.FotoURL,
		Estado:        cl.Estado,
		CreatedAt:     cl.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     cl.UpdatedAt.Format(time.RFC3339),
	}
	if cl.FechaSuscripcion != nil {
		v := cl.FechaSuscripcion.Format("2006-01-02")
		d.FechaSuscripcion = &v
	}
	return d
}

func facturaToResponse(f *model.FacturaCliente) dto.FacturaResponse {
	return dto.FacturaResponse{
		ID:            f.ID.String(),
		ClienteID:     f.ClienteID.String(),
		NumeroFactura: f.NumeroFactura,
		Total:         f.Total,
		Estado:        f.Estado,
		FechaFactura:  f.FechaFactura.Format("2006-01-02"),
		Observaciones: f.Observaciones,
	}
}
