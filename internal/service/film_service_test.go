package service_test

import (
	"context"
	"errors"
	"testing"

	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/service"
	apperrors "go-gin-cinema-booking/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFilmService_CreateFilm(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - allocated id", func(t *testing.T) {
		m := setupMock(t)
		filmService := service.NewFilmService(m.films, m.ids)

		m.ids.On("Next", ctx, model.EntityFilm).Return("Film1", nil).Once()
		want := &model.Film{ID: "Film1", Name: "Heat", Genre: "Crime", Duration: 170}
		m.films.On("Create", ctx, want).Return(want, nil).Once()

		film, err := filmService.CreateFilm(ctx, model.CreateFilmRequest{Name: "Heat", Genre: "Crime", Duration: 170})

		require.NoError(t, err)
		assert.Equal(t, "Film1", film.ID)
	})

	t.Run("Success - generated-form client id raises the counter", func(t *testing.T) {
		m := setupMock(t)
		filmService := service.NewFilmService(m.films, m.ids)

		m.ids.On("WarmUp", ctx, model.EntityFilm, int64(7)).Return(nil).Once()
		want := &model.Film{ID: "Film7", Name: "Heat"}
		m.films.On("Create", ctx, want).Return(want, nil).Once()

		film, err := filmService.CreateFilm(ctx, model.CreateFilmRequest{FilmID: "Film7", Name: "Heat"})

		require.NoError(t, err)
		assert.Equal(t, "Film7", film.ID)
		m.ids.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	})

	t.Run("Failed - counter unavailable for a generated-form id", func(t *testing.T) {
		m := setupMock(t)
		filmService := service.NewFilmService(m.films, m.ids)

		m.ids.On("WarmUp", ctx, model.EntityFilm, int64(3)).Return(errors.New("redis down")).Once()

		_, err := filmService.CreateFilm(ctx, model.CreateFilmRequest{FilmID: "Film3", Name: "Ran"})

		assert.Error(t, err)
		m.films.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - duplicate client id", func(t *testing.T) {
		m := setupMock(t)
		filmService := service.NewFilmService(m.films, m.ids)

		m.films.On("Create", ctx, mock.Anything).Return(nil, apperrors.ErrAlreadyExists).Once()

		_, err := filmService.CreateFilm(ctx, model.CreateFilmRequest{FilmID: "heat-1995", Name: "Heat"})

		assert.ErrorIs(t, err, apperrors.ErrConflict)
		m.ids.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	})
}

func TestFilmService_UpdateFilm(t *testing.T) {
	ctx := context.Background()
	m := setupMock(t)
	filmService := service.NewFilmService(m.films, m.ids)

	_, err := filmService.UpdateFilm(ctx, "Film1", model.UpdateFilmParams{})
	assert.ErrorIs(t, err, apperrors.ErrNoFieldsToUpdate)

	m.films.On("Delete", ctx, "Film1").Return(apperrors.ErrReferenceViolation).Once()
	assert.ErrorIs(t, filmService.DeleteFilm(ctx, "Film1"), apperrors.ErrConflict)
}
