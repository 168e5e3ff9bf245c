package service

import (
	"context"
	"sort"

	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
	"go-gin-cinema-booking/pkg/logger"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingService interface {
	// 建立訂位 (不含選位)
	CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error)
	BookingList(ctx context.Context) ([]*model.Booking, error)
	GetBookingByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateBooking(ctx context.Context, id string, params model.UpdateBookingParams) (*model.Booking, error)
	// 刪除訂位, 釋放所有票券的座位
	DeleteBooking(ctx context.Context, id string) error
	// 選位: 全部成功或全部失敗
	BookSeats(ctx context.Context, req model.BookSeatsRequest) ([]*model.Ticket, error)
}

type BookingServiceImpl struct {
	db                  database.Transactor
	repository          repository.BookingRepository
	screeningRepository repository.ScreeningRepository
	theatreRepository   repository.TheatreRepository
	ticketRepository    repository.TicketRepository
	ids                 idgen.Allocator
}

func NewBookingService(
	db database.Transactor,
	bookingRepository repository.BookingRepository,
	screeningRepository repository.ScreeningRepository,
	theatreRepository repository.TheatreRepository,
	ticketRepository repository.TicketRepository,
	ids idgen.Allocator,
) BookingService {
	return &BookingServiceImpl{
		db:                  db,
		repository:          bookingRepository,
		screeningRepository: screeningRepository,
		theatreRepository:   theatreRepository,
		ticketRepository:    ticketRepository,
		ids:                 ids,
	}
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.ids.Next(ctx, model.EntityBooking)
	if err != nil {
		return nil, err
	}

	return s.repository.Create(ctx, &model.Booking{
		ID:           id,
		NoOfSeats:    *req.NoOfSeats,
		Cost:         *req.Cost,
		EmailAddress: req.EmailAddress,
	})
}

func (s *BookingServiceImpl) BookingList(ctx context.Context) ([]*model.Booking, error) {
	return s.repository.List(ctx)
}

func (s *BookingServiceImpl) GetBookingByID(ctx context.Context, id string) (*model.Booking, error) {
	if err := validateID(id, model.EntityBooking); err != nil {
		return nil, err
	}
	return s.repository.FindByID(ctx, id)
}

func (s *BookingServiceImpl) UpdateBooking(ctx context.Context, id string, params model.UpdateBookingParams) (*model.Booking, error) {
	if err := validateID(id, model.EntityBooking); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repository.Update(ctx, id, params)
}

func (s *BookingServiceImpl) DeleteBooking(ctx context.Context, id string) error {
	if err := validateID(id, model.EntityBooking); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// 1. 鎖定訂位, 等待仍持有此訂位鎖的選位與換票交易
	if _, err := s.repository.FindByIDWithLock(ctx, tx, id); err != nil {
		return err
	}

	tickets, err := s.ticketRepository.ListByBookingID(ctx, tx, id)
	if err != nil {
		return err
	}

	// 2. 依場次 id 排序後加鎖
	locked := make(map[string]bool)
	for _, ticket := range tickets {
		locked[ticket.ScreeningID] = true
	}
	screeningIDs := make([]string, 0, len(locked))
	for screeningID := range locked {
		screeningIDs = append(screeningIDs, screeningID)
	}
	sort.Strings(screeningIDs)

	for _, screeningID := range screeningIDs {
		if _, err := s.screeningRepository.FindByIDWithLock(ctx, tx, screeningID); err != nil {
			return err
		}
	}

	// 3. 刪除票券, 依實際刪除的票券歸還座位 (不依先前的查詢結果)
	deleted, err := s.ticketRepository.DeleteByBookingID(ctx, tx, id)
	if err != nil {
		return err
	}
	released := make(map[string]int)
	for _, screeningID := range deleted {
		if !locked[screeningID] {
			return apperrors.ErrConcurrentlyChanged
		}
		released[screeningID]++
	}

	// 4. 歸還座位
	for _, screeningID := range screeningIDs {
		if released[screeningID] == 0 {
			continue
		}
		if err := s.screeningRepository.AdjustSeatsRemaining(ctx, tx, screeningID, released[screeningID]); err != nil {
			return err
		}
	}

	// 5. 刪除訂位
	if err := s.repository.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := commit(ctx, tx); err != nil {
		return err
	}

	logger.WithComponent("service").Info("booking deleted",
		zap.String("booking_id", id),
		zap.Int("tickets_removed", len(deleted)),
	)
	return nil
}

// BookSeats issues one ticket per requested seat inside a single transaction.
// The screening row lock serializes every seat change on that screening, so the booked-seat read,
// the ticket inserts and the SeatsRemaining decrement are linearizable per screening.
func (s *BookingServiceImpl) BookSeats(ctx context.Context, req model.BookSeatsRequest) ([]*model.Ticket, error) {
	if err := validateID(req.BookingID, model.EntityBooking); err != nil {
		return nil, err
	}
	if err := validateID(req.ScreeningID, model.EntityScreening); err != nil {
		return nil, err
	}
	ticketType := req.TicketType
	if ticketType == "" {
		ticketType = model.DefaultTicketType
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 1. 訂位與場次必須存在; 場次加排他鎖
	if _, err := s.repository.FindByIDForShare(ctx, tx, req.BookingID); err != nil {
		return nil, err
	}
	screening, err := s.screeningRepository.FindByIDWithLock(ctx, tx, req.ScreeningID)
	if err != nil {
		return nil, err
	}
	theatre, err := s.theatreRepository.FindByIDTx(ctx, tx, screening.TheatreID)
	if err != nil {
		return nil, err
	}

	// 2. 已售出座位
	booked, err := s.ticketRepository.ListByScreeningID(ctx, tx, req.ScreeningID)
	if err != nil {
		return nil, err
	}

	// 3. 衝突 / 範圍 / 剩餘座位檢查
	if err := model.CheckSeatSelection(theatre, model.SeatsOf(booked), req.Seats, screening.SeatsRemaining); err != nil {
		return nil, err
	}

	// 4. 配號並寫入票券
	ids, err := s.ids.NextN(ctx, model.EntityTicket, len(req.Seats))
	if err != nil {
		return nil, err
	}
	tickets := make([]*model.Ticket, 0, len(req.Seats))
	for i, seat := range req.Seats {
		tickets = append(tickets, &model.Ticket{
			ID:          ids[i],
			BookingID:   req.BookingID,
			ScreeningID: req.ScreeningID,
			TicketType:  ticketType,
			SeatRow:     seat.Row,
			SeatColumn:  seat.Column,
		})
	}
	created, err := s.ticketRepository.CreateBatch(ctx, tx, tickets)
	if err != nil {
		return nil, err
	}

	// 5. 扣除剩餘座位
	if err := s.screeningRepository.AdjustSeatsRemaining(ctx, tx, req.ScreeningID, -len(created)); err != nil {
		return nil, err
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.WithComponent("service").Info("seats booked",
		zap.String("booking_id", req.BookingID),
		zap.String("screening_id", req.ScreeningID),
		zap.Int("seats", len(created)),
		zap.Int("seats_remaining", screening.SeatsRemaining-len(created)),
	)
	return created, nil
}
