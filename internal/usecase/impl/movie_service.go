package impl

import (
	"context"
	"log/slog"

	deliverycontext "moviedb/internal/delivery/context"
	"moviedb/internal/domain/repository"
	"moviedb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// movieService implements the MovieUsecase interface.
type movieService struct {
	movieRepo repository.MovieRepository
	logger    *slog.Logger
}

// MovieServiceParams holds dependencies for movieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	MovieRepo repository.MovieRepository
	Logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	return &movieService{
		movieRepo: params.MovieRepo,
		logger:    params.Logger,
	}
}

func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMovie persists a new catalog entry.
func (srv *movieService) CreateMovie(ctx context.Context, input *usecase.MovieInput) error {
	movie := usecase.NewMovieFromInput(input)

	if err := srv.movieRepo.Create(ctx, movie); err != nil {
		srv.log(ctx).Error("Failed to create movie", slog.String("title", input.Title), slog.Any("error", err))

		return errors.Wrap(err, "failed to create movie")
	}

	srv.log(ctx).Debug("Movie created", slog.Int64("movieID", movie.ID))

	return nil
}

// UpdateMovie overwrites an existing catalog entry by ID.
func (srv *movieService) UpdateMovie(ctx context.Context, id int64, input *usecase.MovieInput) error {
	movie := usecase.NewMovieFromInput(input)
	movie.ID = id

	if err := srv.movieRepo.Update(ctx, movie); err != nil {
		srv.log(ctx).Error("Failed to update movie", slog.Int64("movieID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to update movie")
	}

	return nil
}

// DeleteMovie removes a catalog entry by ID.
func (srv *movieService) DeleteMovie(ctx context.Context, id int64) error {
	if err := srv.movieRepo.Delete(ctx, id); err != nil {
		srv.log(ctx).Error("Failed to delete movie", slog.Int64("movieID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete movie")
	}

	return nil
}

// ListMovies returns one page of movies in the store's natural order.
func (srv *movieService) ListMovies(ctx context.Context, page, limit int) ([]*usecase.MovieOutput, error) {
	offset, limit := normalizePage(page, limit)

	movies, err := srv.movieRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list movies", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list movies")
	}

	outputs := make([]*usecase.MovieOutput, 0, len(movies))
	for _, movie := range movies {
		outputs = append(outputs, &usecase.MovieOutput{
			ID:     movie.ID,
			Title:  movie.Title,
			Genres: movie.Genres,
			Year:   movie.Year,
		})
	}

	return outputs, nil
}
