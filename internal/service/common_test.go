package service_test

import (
	"context"
	"testing"

	idgenMocks "go-gin-cinema-booking/internal/idgen/mocks"
	repoMocks "go-gin-cinema-booking/internal/repository/mocks"

	"github.com/jackc/pgx/v5"
)

// fakeTx records how a transaction ended. Query methods are never reached because repositories are mocked.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx    *fakeTx
	err   error
	begun int
}

func (db *fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	if db.err != nil {
		return nil, db.err
	}
	db.begun++
	return db.tx, nil
}

func newFakeDB() *fakeDB {
	return &fakeDB{tx: &fakeTx{}}
}

type repoSet struct {
	films      *repoMocks.MockFilmRepository
	theatres   *repoMocks.MockTheatreRepository
	screenings *repoMocks.MockScreeningRepository
	bookings   *repoMocks.MockBookingRepository
	tickets    *repoMocks.MockTicketRepository
	types      *repoMocks.MockTicketTypeRepository
	ids        *idgenMocks.MockAllocator
}

func setupMock(t *testing.T) repoSet {
	return repoSet{
		films:      repoMocks.NewMockFilmRepository(t),
		theatres:   repoMocks.NewMockTheatreRepository(t),
		screenings: repoMocks.NewMockScreeningRepository(t),
		bookings:   repoMocks.NewMockBookingRepository(t),
		tickets:    repoMocks.NewMockTicketRepository(t),
		types:      repoMocks.NewMockTicketTypeRepository(t),
		ids:        idgenMocks.NewMockAllocator(t),
	}
}
