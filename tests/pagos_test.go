package tests

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/handler"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"
	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubPagoRepo is an in-memory PagoRepository for testing.
type stubPagoRepo struct {
	pagos []*model.PagoCliente
}

func (r *stubPagoRepo) DB() *gorm.DB { return nil }

func (r *stubPagoRepo) CreateTx(_ *gorm.DB, p *model.PagoCliente) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagos = append(r.pagos, p)
	return nil
}

func (r *stubPagoRepo) SumConfirmadosTx(_ *gorm.DB, facturaID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.pagos {
		if p.FacturaID == facturaID && p.Estado == "confirmado" {
			total = total.Add(p.Monto)
		}
	}
	return total, nil
}

func (r *stubPagoRepo) ListRecientes(_ context.Context, _ int) ([]repository.PagoRecienteRow, error) {
	return nil, nil
}

func (r *stubPagoRepo) SumMesActual(_ context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *stubPagoRepo) SumCuentasPorPagarMesActual(_ context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

var _ repository.PagoRepository = (*stubPagoRepo)(nil)

// stubFacturaRepo is an in-memory FacturaRepository for testing.
type stubFacturaRepo struct {
	facturas map[uuid.UUID]*model.FacturaCliente
}

func newStubFacturaRepo() *stubFacturaRepo {
	return &stubFacturaRepo{facturas: make(map[uuid.UUID]*model.FacturaCliente)}
}

func (r *stubFacturaRepo) add(total decimal.Decimal) *model.FacturaCliente {
	f := &model.FacturaCliente{
		ID:        uuid.New(),
		ClienteID: uuid.New(),
		Total:     total,
		Estado:    "pendiente",
	}
	r.facturas[f.ID] = f
	return f
}

func (r *stubFacturaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.FacturaCliente, error) {
	var out []model.FacturaCliente
	for _, f := range r.facturas {
		if f.ClienteID == clienteID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *stubFacturaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FacturaCliente, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFacturaRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.FacturaCliente, error) {
	f, ok := r.facturas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFacturaRepo) UpdateEstadoTx(_ *gorm.DB, id uuid.UUID, estado string) error {
	f, ok := r.facturas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	f.Estado = estado
	return nil
}

func (r *stubFacturaRepo) Update(_ context.Context, f *model.FacturaCliente) error {
	r.facturas[f.ID] = f
	return nil
}

func (r *stubFacturaRepo) ResumenPendientes(_ context.Context) (*repository.FacturasPendientesRow, error) {
	row := &repository.FacturasPendientesRow{Total: decimal.Zero}
	for _, f := range r.facturas {
		if f.Estado == "pendiente" || f.Estado == "parcial" {
			row.Count++
			row.Total = row.Total.Add(f.Total)
		}
	}
	return row, nil
}

var _ repository.FacturaRepository = (*stubFacturaRepo)(nil)

func registrar(t *testing.T, svc service.PagoService, f *model.FacturaCliente, monto decimal.Decimal, metodo string, cajaID *uuid.UUID) *dto.RegistrarPagoResponse {
	t.Helper()
	req := dto.RegistrarPagoRequest{
		FacturaID:  f.ID.String(),
		ClienteID:  f.ClienteID.String(),
		Monto:      &monto,
		MetodoPago: metodo,
	}
	if cajaID != nil {
		s := cajaID.String()
		req.CajaID = &s
	}
	resp, err := svc.RegistrarPago(context.Background(), req)
	require.NoError(t, err)
	return resp
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestPagoParcialLuegoPagada(t *testing.T) {
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))

	svc := service.NewPagoService(pagos, facturas, newStubCajaRepo())

	resp := registrar(t, svc, f, decimal.NewFromInt(400), "transferencia", nil)
	assert.Equal(t, "parcial", resp.NuevoEstado)
	assert.Equal(t, "parcial", f.Estado)

	resp = registrar(t, svc, f, decimal.NewFromInt(600), "transferencia", nil)
	assert.Equal(t, "pagada", resp.NuevoEstado)
	assert.Equal(t, "pagada", f.Estado)
	assert.Len(t, pagos.pagos, 2)
}

func TestSobrepagoMarcaPagada(t *testing.T) {
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(500))

	svc := service.NewPagoService(pagos, facturas, newStubCajaRepo())
	resp := registrar(t, svc, f, decimal.NewFromInt(700), "transferencia", nil)

	assert.Equal(t, "pagada", resp.NuevoEstado)
}

func TestPagoMontoCeroDejaParcial(t *testing.T) {
	// A zero payment still flips pendiente → parcial; there is no branch back.
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))

	svc := service.NewPagoService(pagos, facturas, newStubCajaRepo())
	resp := registrar(t, svc, f, decimal.Zero, "transferencia", nil)

	assert.Equal(t, "parcial", resp.NuevoEstado)
	assert.Equal(t, "parcial", f.Estado)
}

func TestPagoEfectivoAcreditaCaja(t *testing.T) {
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))
	cajas := newStubCajaRepo()
	caja := cajas.add(decimal.NewFromInt(2000))

	svc := service.NewPagoService(pagos, facturas, cajas)
	registrar(t, svc, f, decimal.NewFromInt(350), "efectivo", &caja.ID)

	assert.True(t, caja.SaldoActual.Equal(decimal.NewFromInt(2350)), "saldo: %s", caja.SaldoActual)
}

func TestPagoTransferenciaNoTocaCaja(t *testing.T) {
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))
	cajas := newStubCajaRepo()
	caja := cajas.add(decimal.NewFromInt(2000))

	svc := service.NewPagoService(pagos, facturas, cajas)
	registrar(t, svc, f, decimal.NewFromInt(350), "transferencia", &caja.ID)

	assert.True(t, caja.SaldoActual.Equal(decimal.NewFromInt(2000)))
}

func TestPagoFacturaInexistente(t *testing.T) {
	svc := service.NewPagoService(&stubPagoRepo{}, newStubFacturaRepo(), newStubCajaRepo())

	cien := decimal.NewFromInt(100)
	_, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		FacturaID:  uuid.NewString(),
		ClienteID:  uuid.NewString(),
		Monto:      &cien,
		MetodoPago: "efectivo",
	})

	assert.ErrorIs(t, err, service.ErrFacturaNoEncontrada)
}

func TestPagoSeInsertaConfirmadoEnDOP(t *testing.T) {
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))

	svc := service.NewPagoService(pagos, facturas, newStubCajaRepo())
	registrar(t, svc, f, decimal.NewFromInt(100), "transferencia", nil)

	require.Len(t, pagos.pagos, 1)
	p := pagos.pagos[0]
	assert.Equal(t, "confirmado", p.Estado)
	assert.Equal(t, "DOP", p.Moneda)
	assert.True(t, p.Descuento.IsZero())
}

func TestEndpointAceptaMontoCero(t *testing.T) {
	// The amount field is only checked for presence. A posted zero must reach
	// the service and come back parcial instead of dying in validation.
	gin.SetMode(gin.TestMode)

	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))

	svc := service.NewPagoService(pagos, facturas, newStubCajaRepo())
	r := gin.New()
	r.POST("/api/payments", handler.NewPagosHandler(svc).Registrar)

	body := fmt.Sprintf(`{"factura_id":%q,"cliente_id":%q,"monto":0,"metodo_pago":"efectivo"}`,
		f.ID.String(), f.ClienteID.String())
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	assert.Contains(t, w.Body.String(), `"nuevo_estado":"parcial"`)
	assert.Equal(t, "parcial", f.Estado)
	require.Len(t, pagos.pagos, 1)
	assert.True(t, pagos.pagos[0].Monto.IsZero())
}

func TestEndpointRechazaMontoAusente(t *testing.T) {
	gin.SetMode(gin.TestMode)

	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))

	svc := service.NewPagoService(&stubPagoRepo{}, facturas, newStubCajaRepo())
	r := gin.New()
	r.POST("/api/payments", handler.NewPagosHandler(svc).Registrar)

	body := fmt.Sprintf(`{"factura_id":%q,"cliente_id":%q,"metodo_pago":"efectivo"}`,
		f.ID.String(), f.ClienteID.String())
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "pendiente", f.Estado)
}

func TestNumeroPagoFormato(t *testing.T) {
	pagos := &stubPagoRepo{}
	facturas := newStubFacturaRepo()
	f := facturas.add(decimal.NewFromInt(1000))

	svc := service.NewPagoService(pagos, facturas, newStubCajaRepo())
	registrar(t, svc, f, decimal.NewFromInt(100), "transferencia", nil)

	require.Len(t, pagos.pagos, 1)
	assert.Regexp(t, regexp.MustCompile(`^PAG-\d{4}-\d{4}$`), pagos.pagos[0].NumeroPago)
}
