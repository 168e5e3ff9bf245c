package service

import (
	"context"
	"sort"

	"go-gin-cinema-booking/internal/database"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type TicketService interface {
	// 單一座位的選位
	CreateTicket(ctx context.Context, req model.CreateTicketRequest) (*model.Ticket, error)
	TicketList(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error)
	GetTicketByID(ctx context.Context, id string) (*model.Ticket, error)
	// 換位或換場次時重新檢查座位
	UpdateTicket(ctx context.Context, id string, params model.UpdateTicketParams) (*model.Ticket, error)
	DeleteTicket(ctx context.Context, id string) error
}

type TicketServiceImpl struct {
	db                  database.Transactor
	repository          repository.TicketRepository
	bookingRepository   repository.BookingRepository
	screeningRepository repository.ScreeningRepository
	theatreRepository   repository.TheatreRepository
	bookings            BookingService
}

func NewTicketService(
	db database.Transactor,
	ticketRepository repository.TicketRepository,
	bookingRepository repository.BookingRepository,
	screeningRepository repository.ScreeningRepository,
	theatreRepository repository.TheatreRepository,
	bookings BookingService,
) TicketService {
	return &TicketServiceImpl{
		db:                  db,
		repository:          ticketRepository,
		bookingRepository:   bookingRepository,
		screeningRepository: screeningRepository,
		theatreRepository:   theatreRepository,
		bookings:            bookings,
	}
}

func (s *TicketServiceImpl) CreateTicket(ctx context.Context, req model.CreateTicketRequest) (*model.Ticket, error) {
	tickets, err := s.bookings.BookSeats(ctx, req.BookSeatsRequest())
	if err != nil {
		return nil, err
	}
	return tickets[0], nil
}

func (s *TicketServiceImpl) TicketList(ctx context.Context, filter model.TicketFilter) ([]*model.Ticket, error) {
	return s.repository.List(ctx, filter)
}

func (s *TicketServiceImpl) GetTicketByID(ctx context.Context, id string) (*model.Ticket, error) {
	if err := validateID(id, model.EntityTicket); err != nil {
		return nil, err
	}
	return s.repository.FindByID(ctx, id)
}

func (s *TicketServiceImpl) UpdateTicket(ctx context.Context, id string, params model.UpdateTicketParams) (*model.Ticket, error) {
	if err := validateID(id, model.EntityTicket); err != nil {
		return nil, err
	}
	if params.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	if params.BookingID != nil {
		if err := validateID(*params.BookingID, model.EntityBooking); err != nil {
			return nil, err
		}
	}
	if params.ScreeningID != nil {
		if err := validateID(*params.ScreeningID, model.EntityScreening); err != nil {
			return nil, err
		}
	}

	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// 鎖定順序: booking -> screening -> ticket
	// 目前的訂位也加共享鎖, 避免與刪除訂位重複歸還同一個座位
	target := params.Apply(current)
	if err := s.lockBookings(ctx, tx, current.BookingID, target.BookingID); err != nil {
		return nil, err
	}

	screenings, err := s.lockScreenings(ctx, tx, current.ScreeningID, target.ScreeningID)
	if err != nil {
		return nil, err
	}

	locked, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if locked.ScreeningID != current.ScreeningID || locked.BookingID != current.BookingID {
		return nil, apperrors.ErrConcurrentlyChanged
	}
	target = params.Apply(locked)

	moved := target.ScreeningID != locked.ScreeningID
	if moved || target.Seat() != locked.Seat() {
		screening := screenings[target.ScreeningID]
		theatre, err := s.theatreRepository.FindByIDTx(ctx, tx, screening.TheatreID)
		if err != nil {
			return nil, err
		}
		tickets, err := s.repository.ListByScreeningID(ctx, tx, target.ScreeningID)
		if err != nil {
			return nil, err
		}
		booked := make([]model.Seat, 0, len(tickets))
		for _, t := range tickets {
			if t.ID != id {
				booked = append(booked, t.Seat())
			}
		}
		remaining := screening.SeatsRemaining
		if !moved {
			// the ticket's own seat is released by the move
			remaining++
		}
		if err := model.CheckSeatSelection(theatre, booked, []model.Seat{target.Seat()}, remaining); err != nil {
			return nil, err
		}
	}

	updated, err := s.repository.Update(ctx, tx, target)
	if err != nil {
		return nil, err
	}

	if moved {
		if err := s.screeningRepository.AdjustSeatsRemaining(ctx, tx, locked.ScreeningID, 1); err != nil {
			return nil, err
		}
		if err := s.screeningRepository.AdjustSeatsRemaining(ctx, tx, target.ScreeningID, -1); err != nil {
			return nil, err
		}
	}

	if err := commit(ctx, tx); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TicketServiceImpl) DeleteTicket(ctx context.Context, id string) error {
	if err := validateID(id, model.EntityTicket); err != nil {
		return err
	}

	current, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := s.screeningRepository.FindByIDWithLock(ctx, tx, current.ScreeningID); err != nil {
		return err
	}

	locked, err := s.repository.FindByIDWithLock(ctx, tx, id)
	if err != nil {
		return err
	}
	if locked.ScreeningID != current.ScreeningID {
		return apperrors.ErrConcurrentlyChanged
	}

	if err := s.repository.Delete(ctx, tx, id); err != nil {
		return err
	}

	// 歸還座位
	if err := s.screeningRepository.AdjustSeatsRemaining(ctx, tx, locked.ScreeningID, 1); err != nil {
		return err
	}

	return commit(ctx, tx)
}

// lockBookings share-locks the given bookings in id order.
func (s *TicketServiceImpl) lockBookings(ctx context.Context, tx pgx.Tx, ids ...string) error {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	for i, id := range sorted {
		if i > 0 && sorted[i-1] == id {
			continue
		}
		if _, err := s.bookingRepository.FindByIDForShare(ctx, tx, id); err != nil {
			return err
		}
	}
	return nil
}

// lockScreenings takes the row locks of the given screenings in id order.
func (s *TicketServiceImpl) lockScreenings(ctx context.Context, tx pgx.Tx, ids ...string) (map[string]*model.Screening, error) {
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)

	screenings := make(map[string]*model.Screening, len(sorted))
	for _, id := range sorted {
		if _, ok := screenings[id]; ok {
			continue
		}
		screening, err := s.screeningRepository.FindByIDWithLock(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		screenings[id] = screening
	}
	return screenings, nil
}
