package service

import (
	"context"
	"errors"
	"time"

	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/infra"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var ErrClienteNoEncontrado = errors.New("Cliente no encontrado")

type ClienteService interface {
	Listar(ctx context.Context) ([]dto.ClienteListItem, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error)
}

type clienteService struct {
	repo  repository.ClienteRepository
	fotos *infra.FotoStorage
}

func NewClienteService(repo repository.ClienteRepository, fotos *infra.FotoStorage) ClienteService {
	return &clienteService{repo: repo, fotos: fotos}
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteListItem, error) {
	rows, err := s.repo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClienteListItem, len(rows))
	for i, r := range rows {
		resp[i] = dto.ClienteListItem{
			ID:            r.ID.String(),
			Nombre:        r.Nombre,
			Apellidos:     r.Apellidos,
			Telefono:      r.Telefono,
			Email:         r.Email,
			CodigoCliente: r.CodigoCliente,
			HasPending:    r.HasPending,
		}
	}
	return resp, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}

	// Null out photo references whose file is gone from disk.
	if cliente.FotoURL != nil && s.fotos != nil && !s.fotos.Existe(*cliente.FotoURL) {
		cliente.FotoURL = nil
	}
	return cliente, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNoEncontrado
		}
		return nil, err
	}

	fotoURL := req.FotoURL
	if fotoURL != nil && infra.EsDataURL(*fotoURL) && s.fotos != nil {
		stored, err := s.fotos.Guardar(*fotoURL, id.String())
		if err != nil {
			// The profile update still goes through without the photo.
			log.Error().Err(err).Str("cliente_id", id.String()).Msg("error guardando foto")
			fotoURL = cliente.FotoURL
		} else {
			fotoURL = &stored
		}
	}

	cliente.Nombre = req.Nombre
	cliente.Apellidos = req.Apellidos
	cliente.Telefono = req.Telefono
	cliente.Email = req.Email
	cliente.Direccion = req.Direccion
	cliente.Sexo = req.Sexo
	cliente.FotoURL = fotoURL
	if req.Estado != "" {
		cliente.Estado = req.Estado
	} else {
		cliente.Estado = "activo"
	}
	if req.FechaSuscripcion != nil {
		fecha, err := time.Parse("2006-01-02", *req.FechaSuscripcion)
		if err == nil {
			cliente.FechaSuscripcion = &fecha
		}
	} else {
		cliente.FechaSuscripcion = nil
	}

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}
