package handler

import (
	"net/http"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/gin-gonic/gin"
)

// CatalogosHandler serves the lookup endpoints the forms depend on.
type CatalogosHandler struct {
	cajas  repository.CajaRepository
	bancos repository.BancoRepository
}

func NewCatalogosHandler(cajas repository.CajaRepository, bancos repository.BancoRepository) *CatalogosHandler {
	return &CatalogosHandler{cajas: cajas, bancos: bancos}
}

// ListarCajas godoc
// @Summary Cajas activas con su saldo actual
// @Tags catalogos
// @Produce json
// @Success 200 {array} dto.CajaResumen
// @Router /api/cajas [get]
func (h *CatalogosHandler) ListarCajas(c *gin.Context) {
	cajas, err := h.cajas.ListActivas(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	resp := make([]dto.CajaResumen, len(cajas))
	for i, cj := range cajas {
		resp[i] = dto.CajaResumen{
			ID:          cj.ID.String(),
			Nombre:      cj.Nombre,
			Tipo:        cj.Tipo,
			SaldoActual: cj.SaldoActual,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// ListarBancos godoc
// @Summary Bancos activos con sus cuentas activas
// @Tags catalogos
// @Produce json
// @Success 200 {array} dto.BancoResumen
// @Router /api/banks [get]
func (h *CatalogosHandler) ListarBancos(c *gin.Context) {
	banks, err := h.bancos.ListActivosConCuentas(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	resp := make([]dto.BancoResumen, len(banks))
	for i, b := range banks {
		accounts := make([]dto.CuentaResumen, len(b.Cuentas))
		for j, cu := range b.Cuentas {
			accounts[j] = dto.CuentaResumen{
				ID:                  cu.ID.String(),
				NumeroCuenta:        cu.NumeroCuenta,
				NombreOficialCuenta: cu.NombreOficialCuenta,
				TipoCuenta:          cu.TipoCuenta,
				Moneda:              cu.Moneda,
			}
		}
		resp[i] = dto.BancoResumen{
			ID:       b.ID.String(),
			Nombre:   b.Nombre,
			Codigo:   b.Codigo,
			Accounts: accounts,
		}
	}
	c.JSON(http.StatusOK, resp)
}
