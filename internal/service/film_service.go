package service

import (
	"context"

	"go-gin-cinema-booking/internal/idgen"
	"go-gin-cinema-booking/internal/model"
	"go-gin-cinema-booking/internal/repository"
	apperrors "go-gin-cinema-booking/pkg/app_errors"
)

type FilmService interface {
	CreateFilm(ctx context.Context, req model.CreateFilmRequest) (*model.Film, error)
	FilmList(ctx context.Context) ([]*model.Film, error)
	GetFilmByID(ctx context.Context, id string) (*model.Film, error)
	UpdateFilm(ctx context.Context, id string, params model.UpdateFilmParams) (*model.Film, error)
	// 仍有場次引用時回傳 ErrReferenceViolation
	DeleteFilm(ctx context.Context, id string) error
}

type FilmServiceImpl struct {
	repository repository.FilmRepository
	ids        idgen.Allocator
}

func NewFilmService(filmRepository repository.FilmRepository, ids idgen.Allocator) FilmService {
	return &FilmServiceImpl{
		repository: filmRepository,
		ids:        ids,
	}
}

func (s *FilmServiceImpl) CreateFilm(ctx context.Context, req model.CreateFilmRequest) (*model.Film, error) {
	id, err := resolveID(ctx, s.ids, model.EntityFilm, req.FilmID)
	if err != nil {
		return nil, err
	}

	return s.repository.Create(ctx, &model.Film{
		ID:       id,
		Name:     req.Name,
		Category: req.Category,
		Genre:    req.Genre,
		Duration: req.Duration,
	})
}

func (s *FilmServiceImpl) FilmList(ctx context.Context) ([]*model.Film, error) {
	return s.repository.List(ctx)
}

func (s *FilmServiceImpl) GetFilmByID(ctx context.Context, id string) (*model.Film, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *FilmServiceImpl) UpdateFilm(ctx context.Context, id string, params model.UpdateFilmParams) (*model.Film, error) {
	if params.IsEmpty() {
		return nil, apperrors.ErrNoFieldsToUpdate
	}
	return s.repository.Update(ctx, id, params)
}

func (s *FilmServiceImpl) DeleteFilm(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
