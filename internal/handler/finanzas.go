package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	formDataCacheKey = "finanzas:form-data"
	formDataCacheTTL = 5 * time.Minute
)

type FinanzasHandler struct {
	svc service.FinanzasService
	rdb *redis.Client
}

func NewFinanzasHandler(svc service.FinanzasService, rdb *redis.Client) *FinanzasHandler {
	return &FinanzasHandler{svc: svc, rdb: rdb}
}

// RegistrarTransaccion godoc
// @Summary Registra un ingreso o gasto en el libro contable
// @Tags finanzas
// @Accept json
// @Produce json
// @Param body body dto.RegistrarMovimientoRequest true "Movimiento"
// @Success 201 {object} dto.MovimientoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/finance/transactions [post]
func (h *FinanzasHandler) RegistrarTransaccion(c *gin.Context) {
	var req dto.RegistrarMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.RegistrarMovimiento(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	// New lookup data may follow a posting closely; cheaper to just drop the
	// form-data cache than to reason about staleness.
	_ = h.rdb.Del(context.Background(), formDataCacheKey).Err()

	c.JSON(http.StatusCreated, resp)
}

// DailySummary godoc
// @Summary Totales del día, saldos de cajas y movimientos recientes
// @Tags finanzas
// @Produce json
// @Success 200 {object} dto.DailySummaryResponse
// @Router /api/finance/daily-summary [get]
func (h *FinanzasHandler) DailySummary(c *gin.Context) {
	resp, err := h.svc.DailySummary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// FormData godoc
// @Summary Catálogos activos para el formulario de transacciones
// @Tags finanzas
// @Produce json
// @Success 200 {object} dto.FormDataResponse
// @Router /api/finance/form-data [get]
func (h *FinanzasHandler) FormData(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := h.rdb.Get(ctx, formDataCacheKey).Bytes(); err == nil {
		var resp dto.FormDataResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.svc.FormData(ctx)
	if err != nil {
		c.Error(err)
		return
	}

	// Populate cache — best effort, ignore errors.
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), formDataCacheKey, b, formDataCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
