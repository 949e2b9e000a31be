package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrFacturaNoEncontrada = errors.New("Factura no encontrada")

type PagoService interface {
	// RegistrarPago records a payment against an invoice, rederives the
	// invoice status from cumulative confirmed payments, and credits the
	// caja when paid in cash — all in one transaction with the invoice row
	// locked, so concurrent postings cannot derive status from a stale sum.
	RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.RegistrarPagoResponse, error)
}

type pagoService struct {
	pagos    repository.PagoRepository
	facturas repository.FacturaRepository
	cajas    repository.CajaRepository
}

func NewPagoService(
	pagos repository.PagoRepository,
	facturas repository.FacturaRepository,
	cajas repository.CajaRepository,
) PagoService {
	return &pagoService{pagos: pagos, facturas: facturas, cajas: cajas}
}

func (s *pagoService) RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (*dto.RegistrarPagoResponse, error) {
	facturaID, err := uuid.Parse(req.FacturaID)
	if err != nil {
		return nil, fmt.Errorf("factura_id inválido: %w", err)
	}
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("cliente_id inválido: %w", err)
	}
	cajaID, err := parseOptionalUUID(req.CajaID, "caja_id")
	if err != nil {
		return nil, err
	}
	cuentaID, err := parseOptionalUUID(req.CuentaBancariaID, "cuenta_bancaria_id")
	if err != nil {
		return nil, err
	}

	monto := decimal.Zero
	if req.Monto != nil {
		monto = *req.Monto
	}

	pago := &model.PagoCliente{
		ID:               uuid.New(),
		FacturaID:        facturaID,
		ClienteID:        clienteID,
		NumeroPago:       generarNumeroPago(),
		FechaPago:        time.Now(),
		Monto:            monto,
		MetodoPago:       req.MetodoPago,
		CajaID:           cajaID,
		CuentaBancariaID: cuentaID,
		Estado:           "confirmado",
		Moneda:           "DOP",
	}
	if req.NumeroReferencia != nil {
		pago.NumeroReferencia = *req.NumeroReferencia
	}
	if req.Observaciones != nil {
		pago.Observaciones = *req.Observaciones
	}

	var nuevoEstado string
	txErr := runTx(ctx, s.pagos.DB(), func(tx *gorm.DB) error {
		factura, err := s.facturas.FindByIDForUpdateTx(tx, facturaID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFacturaNoEncontrada
			}
			return err
		}

		pagadoAntes, err := s.pagos.SumConfirmadosTx(tx, facturaID)
		if err != nil {
			return err
		}
		pagadoDespues := pagadoAntes.Add(monto)

		// Status derives from the cumulative total. There is deliberately no
		// "else pendiente" branch: a zero-amount payment leaves the invoice
		// parcial, matching the observed behavior of the system of record.
		nuevoEstado = "parcial"
		if pagadoDespues.GreaterThanOrEqual(factura.Total) {
			nuevoEstado = "pagada"
		}

		if err := s.pagos.CreateTx(tx, pago); err != nil {
			return err
		}
		if err := s.facturas.UpdateEstadoTx(tx, facturaID, nuevoEstado); err != nil {
			return err
		}

		// Payments are always inflows — no sign logic.
		if req.MetodoPago == "efectivo" && cajaID != nil {
			return s.cajas.AjustarSaldoTx(tx, *cajaID, monto)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return &dto.RegistrarPagoResponse{
		Success:     true,
		PaymentID:   pago.ID.String(),
		NuevoEstado: nuevoEstado,
	}, nil
}

// generarNumeroPago builds PAG-<year>-<4 digit random>. No collision check —
// same odds as the system of record.
func generarNumeroPago() string {
	return fmt.Sprintf("PAG-%d-%d", time.Now().Year(), 1000+rand.IntN(9000))
}
