package service

import (
	"context"
	"time"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/repository"
)

// ReporteService computes the dashboard aggregates. Everything is read
// fresh per call — no caching, no pagination.
type ReporteService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type reporteService struct {
	clientes repository.ClienteRepository
	facturas repository.FacturaRepository
	pagos    repository.PagoRepository
}

func NewReporteService(
	clientes repository.ClienteRepository,
	facturas repository.FacturaRepository,
	pagos repository.PagoRepository,
) ReporteService {
	return &reporteService{clientes: clientes, facturas: facturas, pagos: pagos}
}

func (s *reporteService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	activos, err := s.clientes.CountActivosConSuscripcion(ctx)
	if err != nil {
		return nil, err
	}
	pendientes, err := s.facturas.ResumenPendientes(ctx)
	if err != nil {
		return nil, err
	}
	ingresosMes, err := s.pagos.SumMesActual(ctx)
	if err != nil {
		return nil, err
	}
	gastosMes, err := s.pagos.SumCuentasPorPagarMesActual(ctx)
	if err != nil {
		return nil, err
	}
	recientes, err := s.pagos.ListRecientes(ctx, 2)
	if err != nil {
		return nil, err
	}

	actividad := make([]dto.PagoReciente, len(recientes))
	for i, p := range recientes {
		actividad[i] = dto.PagoReciente{
			Monto:      p.Monto,
			MetodoPago: p.MetodoPago,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
			Nombre:     p.Nombre,
			Apellidos:  p.Apellidos,
		}
	}

	return &dto.StatsResponse{
		ActiveClients: activos,
		PendingInvoices: dto.FacturasPendientes{
			Count: pendientes.Count,
			Total: pendientes.Total,
		},
		MonthlyIncome:   ingresosMes,
		MonthlyExpenses: gastosMes,
		RecentActivity:  actividad,
	}, nil
}
