package service

import (
	"context"

	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
)

type TicketTypeService interface {
	CreateTicketType(ctx context.Context, req model.CreateTicketTypeRequest) (*model.TicketType, error)
	TicketTypeList(ctx context.Context) ([]*model.TicketType, error)
	GetTicketTypeByID(ctx context.Context, id string) (*model.TicketType, error)
	UpdateTicketType(ctx context.Context, id string, params model.UpdateTicketTypeParams) (*model.TicketType, error)
	DeleteTicketType(ctx context.Context, id string) error
}

type TicketTypeServiceImpl struct {
	repository repository.TicketTypeRepository
	ids        idgen.Allocator
}

func NewTicketTypeService(ticketTypeRepository repository.TicketTypeRepository, ids idgen.Allocator) TicketTypeService {
	return &TicketTypeServiceImpl{
		repository: ticketTypeRepository,
		ids:        ids,
	}
}

func (s *TicketTypeServiceImpl) CreateTicketType(ctx context.Context, req model.CreateTicketTypeRequest) (*model.TicketType, error) {
	if req.Cost == nil || *req.Cost < 0 {
		return nil, apperrors.ErrInvalidInput
	}

	id, err := resolveID(ctx, s.ids, model.EntityTicketType, req.TicketTypeID)
	if err != nil {
		return nil, err
	}

	return s.repository.Create(ctx, &model.TicketType{
		ID:   id,
		Name: req.Name,
		Cost: *req.Cost,
	})
}

func (s *TicketTypeServiceImpl) TicketTypeList(ctx context.Context) ([]*model.TicketType, error) {
	return s.repository.List(ctx)
}

func (s *TicketTypeServiceImpl) GetTicketTypeByID(ctx context.Context, id string) (*model.TicketType, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *TicketTypeServiceImpl) UpdateTicketType(ctx context.Context, id string, params model.UpdateTicketTypeParams) (*model.TicketType, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	return s.repository.Update(ctx, id, params)
}

// Tickets keep their TicketType label, so deleting a type never touches seats.
func (s *TicketTypeServiceImpl) DeleteTicketType(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
