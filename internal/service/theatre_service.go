package service

import (
	"context"

	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TheatreService interface {
	CreateTheatre(ctx context.Context, req model.CreateTheatreRequest) (*model.Theatre, error)
	TheatreList(ctx context.Context) ([]*model.Theatre, error)
	GetTheatreByID(ctx context.Context, id string) (*model.Theatre, error)
	// 座位配置變更時重新計算所有場次的剩餘座位
	UpdateTheatre(ctx context.Context, id string, params model.UpdateTheatreParams) (*model.Theatre, error)
	DeleteTheatre(ctx context.Context, id string) error
}

type TheatreServiceImpl struct {
	db                  database.Transactor
	repository          repository.TheatreRepository
	screeningRepository repository.ScreeningRepository
	ticketRepository    repository.TicketRepository
	ids                 idgen.Allocator
}

func NewTheatreService(
	db database.Transactor,
	theatreRepository repository.TheatreRepository,
	screeningRepository repository.ScreeningRepository,
	ticketRepository repository.TicketRepository,
	ids idgen.Allocator,
) TheatreService {
	return &TheatreServiceImpl{
		db:                  db,
		repository:          theatreRepository,
		screeningRepository: screeningRepository,
		ticketRepository:    ticketRepository,
		ids:                 ids,
	}
}

func (s *TheatreServiceImpl) CreateTheatre(ctx context.Context, req model.CreateTheatreRequest) (*model.Theatre, error) {
	if req.Rows == nil || req.Columns == nil {
		return nil, apperrors.ErrInvalidInput
	}

	theatre := &model.Theatre{
		ID:       req.TheatreID,
		Name:     req.Name,
		Capacity: req.Capacity,
		Rows:     *req.Rows,
		Columns:  *req.Columns,
	}
	if err := theatre.NormalizeLayout(); err != nil {
		return nil, err
	}

	id, err := resolveID(ctx, s.ids, model.EntityTheatre, theatre.ID)
	if err != nil {
		return nil, err
	}
	theatre.ID = id

	return s.repository.Create(ctx, theatre)
}

func (s *TheatreServiceImpl) TheatreList(ctx context.Context) ([]*model.Theatre, error) {
	return s.repository.List(ctx)
}

func (s *TheatreServiceImpl) GetTheatreByID(ctx context.Context, id string) (*model.Theatre, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *TheatreServiceImpl) UpdateTheatre(ctx context.Context, id string, params model.UpdateTheatreParams) (*model.Theatre, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 鎖定順序: screening -> theatre, 與選位相同
	if _, err := s.screeningRepository.ListByTheatreIDWithLock(ctx, tx, id); err != nil {
		return nil, err
	}

	theatre, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	merged := params.Apply(theatre)
	if err := merged.NormalizeLayout(); err != nil {
		return nil, err
	}

	if params.ChangesLayout(theatre) {
		// screenings moved onto this theatre while we waited for its lock are picked up here
		screenings, err := s.screeningRepository.ListByTheatreIDWithLock(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		for _, screening := range screenings {
			tickets, err := s.ticketRepository.ListByScreeningID(ctx, tx, screening.ID)
			if err != nil {
				return nil, err
			}
			remaining, err := model.RecalculateSeatsRemaining(merged, model.SeatsOf(tickets))
			if err != nil {
				return nil, err
			}
			screening.SeatsRemaining = remaining
			if _, err := s.screeningRepository.Update(ctx, tx, screening); err != nil {
				return nil, err
			}
		}
		logger.WithComponent("service").Info("theatre layout changed",
			zap.String("theatre_id", id),
			zap.Int("rows", merged.Rows),
			zap.Int("columns", merged.Columns),
			zap.Int("screenings_recalculated", len(screenings)),
		)
	}

	updated, err := s.repository.Update(ctx, tx, merged)
	if err != nil {
		return nil, err
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TheatreServiceImpl) DeleteTheatre(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
