package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinanzasService interface {
	// RegistrarMovimiento inserts one ledger entry and applies its balance
	// effect in the same transaction.
	RegistrarMovimiento(ctx context.Context, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error)
	DailySummary(ctx context.Context) (*dto.DailySummaryResponse, error)
	FormData(ctx context.Context) (*dto.FormDataResponse, error)
}

type finanzasService struct {
	movimientos repository.MovimientoRepository
	cajas       repository.CajaRepository
	bancos      repository.BancoRepository
	categorias  repository.CategoriaRepository
}

func NewFinanzasService(
	movimientos repository.MovimientoRepository,
	cajas repository.CajaRepository,
	bancos repository.BancoRepository,
	categorias repository.CategoriaRepository,
) FinanzasService {
	return &finanzasService{
		movimientos: movimientos,
		cajas:       cajas,
		bancos:      bancos,
		categorias:  categorias,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── RegistrarMovimiento ───────────────────────────────────────────────────────
// One transaction: insert movimiento, then
//   - efectivo + caja:        saldo_actual += monto (ingreso) / −= monto (gasto)
//   - transferencia + cuenta: touch updated_at only (no bank balances exist)
//   - papelería / no target:  movement only
// A failed balance update rolls the insert back.

func (s *finanzasService) RegistrarMovimiento(ctx context.Context, req dto.RegistrarMovimientoRequest) (*dto.MovimientoResponse, error) {
	categoriaID, err := parseOptionalUUID(req.CategoriaID, "categoria_id")
	if err != nil {
		return nil, err
	}
	cajaID, err := parseOptionalUUID(req.CajaID, "caja_id")
	if err != nil {
		return nil, err
	}
	bankID, err := parseOptionalUUID(req.BankID, "bank_id")
	if err != nil {
		return nil, err
	}
	cuentaID, err := parseOptionalUUID(req.CuentaBancariaID, "cuenta_bancaria_id")
	if err != nil {
		return nil, err
	}
	usuarioID, err := parseOptionalUUID(req.UsuarioID, "usuario_id")
	if err != nil {
		return nil, err
	}

	fecha := time.Now()
	if req.Fecha != nil {
		fecha, err = time.Parse("2006-01-02", *req.Fecha)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida: %w", err)
		}
	}

	mov := &model.MovimientoContable{
		Tipo:             req.Tipo,
		Monto:            req.Monto,
		CategoriaID:      categoriaID,
		Metodo:           req.Metodo,
		CajaID:           cajaID,
		BankID:           bankID,
		CuentaBancariaID: cuentaID,
		Descripcion:      req.Descripcion,
		Fecha:            fecha,
		UsuarioID:        usuarioID,
	}

	txErr := runTx(ctx, s.movimientos.DB(), func(tx *gorm.DB) error {
		if err := s.movimientos.CreateTx(tx, mov); err != nil {
			return err
		}

		switch {
		case req.Metodo == "efectivo" && cajaID != nil:
			delta := req.Monto
			if req.Tipo == "gasto" {
				delta = delta.Neg()
			}
			return s.cajas.AjustarSaldoTx(tx, *cajaID, delta)
		case req.Metodo == "transferencia" && cuentaID != nil:
			return s.bancos.TouchCuentaTx(tx, *cuentaID)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return movimientoToResponse(mov), nil
}

// ── DailySummary ──────────────────────────────────────────────────────────────

func (s *finanzasService) DailySummary(ctx context.Context) (*dto.DailySummaryResponse, error) {
	income, err := s.movimientos.SumDelDia(ctx, "ingreso")
	if err != nil {
		return nil, err
	}
	expense, err := s.movimientos.SumDelDia(ctx, "gasto")
	if err != nil {
		return nil, err
	}
	cajas, err := s.cajas.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	cuentas, err := s.bancos.ListCuentasActivasConBanco(ctx)
	if err != nil {
		return nil, err
	}
	recientes, err := s.movimientos.ListRecientes(ctx, 20)
	if err != nil {
		return nil, err
	}

	resp := &dto.DailySummaryResponse{
		Today: dto.ResumenDia{
			Income:  income,
			Expense: expense,
			Net:     income.Sub(expense),
		},
		Cajas:    make([]dto.CajaResumen, len(cajas)),
		Accounts: make([]dto.CuentaResumen, len(cuentas)),
		Recent:   make([]dto.MovimientoReciente, len(recientes)),
	}
	for i, c := range cajas {
		resp.Cajas[i] = dto.CajaResumen{ID: c.ID.String(), Nombre: c.Nombre, SaldoActual: c.SaldoActual}
	}
	for i, c := range cuentas {
		resp.Accounts[i] = dto.CuentaResumen{
			ID:                  c.ID.String(),
			NumeroCuenta:        c.NumeroCuenta,
			NombreOficialCuenta: c.NombreOficialCuenta,
			BancoNombre:         c.BancoNombre,
		}
	}
	for i, m := range recientes {
		resp.Recent[i] = dto.MovimientoReciente{
			ID:              m.ID.String(),
			Tipo:            m.Tipo,
			Monto:           m.Monto,
			Metodo:          m.Metodo,
			Descripcion:     m.Descripcion,
			Fecha:           m.Fecha.Format(time.RFC3339),
			CategoriaNombre: m.CategoriaNombre,
		}
	}
	return resp, nil
}

// ── FormData ──────────────────────────────────────────────────────────────────

func (s *finanzasService) FormData(ctx context.Context) (*dto.FormDataResponse, error) {
	cajas, err := s.cajas.ListActivas(ctx)
	if err != nil {
		return nil, err
	}
	banks, err := s.bancos.ListActivosConCuentas(ctx)
	if err != nil {
		return nil, err
	}
	cuentas, err := s.bancos.ListCuentasActivas(ctx)
	if err != nil {
		return nil, err
	}
	categorias, err := s.categorias.ListCuentasActivas(ctx)
	if err != nil {
		return nil, err
	}
	papeleria, err := s.categorias.ListPapeleriaActivas(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.FormDataResponse{
		Cajas:               make([]dto.CajaResumen, len(cajas)),
		Banks:               make([]dto.BancoResumen, len(banks)),
		Accounts:            make([]dto.CuentaResumen, len(cuentas)),
		Categories:          make([]dto.CategoriaResumen, len(categorias)),
		PapeleriaCategories: make([]dto.CategoriaResumen, len(papeleria)),
	}
	for i, c := range cajas {
		resp.Cajas[i] = dto.CajaResumen{ID: c.ID.String(), Nombre: c.Nombre, SaldoActual: c.SaldoActual}
	}
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
		resp.Banks[i] = dto.BancoResumen{ID: b.ID.String(), Nombre: b.Nombre, Codigo: b.Codigo, Accounts: accounts}
	}
	for i, cu := range cuentas {
		resp.Accounts[i] = dto.CuentaResumen{
			ID:                  cu.ID.String(),
			BankID:              cu.BankID.String(),
			NumeroCuenta:        cu.NumeroCuenta,
			NombreOficialCuenta: cu.NombreOficialCuenta,
		}
	}
	for i, c := range categorias {
		resp.Categories[i] = dto.CategoriaResumen{ID: c.ID.String(), Nombre: c.Nombre, Tipo: c.Tipo, Subtipo: c.Subtipo}
	}
	for i, c := range papeleria {
		resp.PapeleriaCategories[i] = dto.CategoriaResumen{ID: c.ID.String(), Nombre: c.Nombre}
	}
	return resp, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func parseOptionalUUID(v *string, field string) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, fmt.Errorf("%s inválido: %w", field, err)
	}
	return &id, nil
}

func movimientoToResponse(m *model.MovimientoContable) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:          m.ID.String(),
		Tipo:        m.Tipo,
		Monto:       m.Monto,
		Metodo:      m.Metodo,
		Descripcion: m.Descripcion,
		Fecha:       m.Fecha.Format("2006-01-02"),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
	if m.CategoriaID != nil {
		v := m.CategoriaID.String()
		resp.CategoriaID = &v
	}
	if m.CajaID != nil {
		v := m.CajaID.String()
		resp.CajaID = &v
	}
	if m.BankID != nil {
		v := m.BankID.String()
		resp.BankID = &v
	}
	if m.CuentaBancariaID != nil {
		v := m.CuentaBancariaID.String()
		resp.CuentaBancariaID = &v
	}
	return resp
}
