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
	"golang.org/x/sync/errgroup"
)

type ScreeningService interface {
	// 建立場次, SeatsRemaining 以影廳容量初始化
	CreateScreening(ctx context.Context, req model.CreateScreeningRequest) (*model.Screening, error)
	ScreeningList(ctx context.Context) ([]*model.Screening, error)
	GetScreeningByID(ctx context.Context, id string) (*model.Screening, error)
	ListScreeningsByFilm(ctx context.Context, filmID string) ([]*model.Screening, error)
	UpdateScreening(ctx context.Context, id string, params model.UpdateScreeningParams) (*model.Screening, error)
	// 連同票券一起刪除
	DeleteScreening(ctx context.Context, id string) error
	GetSeatMap(ctx context.Context, id string) (*model.SeatMap, error)
}

type ScreeningServiceImpl struct {
	db                database.Transactor
	repository        repository.ScreeningRepository
	filmRepository    repository.FilmRepository
	theatreRepository repository.TheatreRepository
	ticketRepository  repository.TicketRepository
	ids               idgen.Allocator
}

func NewScreeningService(
	db database.Transactor,
	screeningRepository repository.ScreeningRepository,
	filmRepository repository.FilmRepository,
	theatreRepository repository.TheatreRepository,
	ticketRepository repository.TicketRepository,
	ids idgen.Allocator,
) ScreeningService {
	return &ScreeningServiceImpl{
		db:                db,
		repository:        screeningRepository,
		filmRepository:    filmRepository,
		theatreRepository: theatreRepository,
		ticketRepository:  ticketRepository,
		ids:               ids,
	}
}

func (s *ScreeningServiceImpl) CreateScreening(ctx context.Context, req model.CreateScreeningRequest) (*model.Screening, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 1. 參照檢查在配號之前, 電影或影廳不存在時不消耗 ID
	if _, err := s.filmRepository.FindByIDTx(ctx, tx, req.FilmID); err != nil {
		return nil, err
	}
	theatre, err := s.theatreRepository.FindByIDTx(ctx, tx, req.TheatreID)
	if err != nil {
		return nil, err
	}

	// 2. 配號
	id, err := s.ids.Next(ctx, model.EntityScreening)
	if err != nil {
		return nil, err
	}

	// 3. 寫入
	created, err := s.repository.Create(ctx, tx, &model.Screening{
		ID:             id,
		FilmID:         req.FilmID,
		TheatreID:      req.TheatreID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		SeatsRemaining: theatre.Capacity,
	})
	if err != nil {
		return nil, err
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *ScreeningServiceImpl) ScreeningList(ctx context.Context) ([]*model.Screening, error) {
	return s.repository.List(ctx)
}

func (s *ScreeningServiceImpl) GetScreeningByID(ctx context.Context, id string) (*model.Screening, error) {
	if err := validateID(id, model.EntityScreening); err != nil {
		return nil, err
	}
	return s.repository.FindByID(ctx, id)
}

func (s *ScreeningServiceImpl) ListScreeningsByFilm(ctx context.Context, filmID string) ([]*model.Screening, error) {
	return s.repository.ListByFilmID(ctx, filmID)
}

func (s *ScreeningServiceImpl) UpdateScreening(ctx context.Context, id string, params model.UpdateScreeningParams) (*model.Screening, error) {
	if err := validateID(id, model.EntityScreening); err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	screening, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if params.FilmID != nil {
		if _, err := s.filmRepository.FindByIDTx(ctx, tx, *params.FilmID); err != nil {
			return nil, err
		}
		screening.FilmID = *params.FilmID
	}

	theatreID := screening.TheatreID
	if params.TheatreID != nil {
		theatreID = *params.TheatreID
	}
	theatre, err := s.theatreRepository.FindByIDTx(ctx, tx, theatreID)
	if err != nil {
		return nil, err
	}

	if theatreID != screening.TheatreID {
		tickets, err := s.ticketRepository.ListByScreeningID(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		remaining, err := model.RecalculateSeatsRemaining(theatre, model.SeatsOf(tickets))
		if err != nil {
			return nil, err
		}
		screening.TheatreID = theatreID
		screening.SeatsRemaining = remaining
	}

	// 直接指定的剩餘座位以 (可能剛換過的) 影廳容量為上限
	if params.SeatsRemaining != nil {
		if err := model.CheckSeatsRemaining(theatre, *params.SeatsRemaining); err != nil {
			return nil, err
		}
		screening.SeatsRemaining = *params.SeatsRemaining
	}

	if params.Date != nil {
		screening.Date = *params.Date
	}
	if params.StartTime != nil {
		screening.StartTime = *params.StartTime
	}

	updated, err := s.repository.Update(ctx, tx, screening)
	if err != nil {
		return nil, err
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *ScreeningServiceImpl) DeleteScreening(ctx context.Context, id string) error {
	if err := validateID(id, model.EntityScreening); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := s.repository.FindByIDWithLock(ctx, tx, id); err != nil {
		return err
	}

	removed, err := s.ticketRepository.DeleteByScreeningID(ctx, tx, id)
	if err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := commit(ctx, tx); err != nil {
		return err
	}

	logger.WithComponent("service").Info("screening deleted",
		zap.String("screening_id", id),
		zap.Int64("tickets_removed", removed),
	)
	return nil
}

// GetSeatMap reads outside a transaction; the grid is a snapshot for rendering, bookSeats re-validates.
func (s *ScreeningServiceImpl) GetSeatMap(ctx context.Context, id string) (*model.SeatMap, error) {
	if err := validateID(id, model.EntityScreening); err != nil {
		return nil, err
	}

	screening, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		theatre *model.Theatre
		tickets []*model.Ticket
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		theatre, err = s.theatreRepository.FindByID(gctx, screening.TheatreID)
		return err
	})
	g.Go(func() error {
		var err error
		tickets, err = s.ticketRepository.List(gctx, model.TicketFilter{ScreeningID: id})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.SeatMap{
		ScreeningID:    screening.ID,
		TheatreID:      theatre.ID,
		Rows:           theatre.Rows,
		Columns:        theatre.Columns,
		Capacity:       theatre.Capacity,
		SeatsRemaining: screening.SeatsRemaining,
		Booked:         model.SeatsOf(tickets),
	}, nil
}
