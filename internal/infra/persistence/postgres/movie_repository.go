package postgres

import (
	"context"

	"moviedb/internal/domain/entity"
	domainerrors "moviedb/internal/domain/errors"
	"moviedb/internal/domain/repository"
	"moviedb/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// movieRepository implements the repository.MovieRepository interface using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

// Create persists a new movie.
func (repo *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Create(movieM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required movie information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create movie")
	}

	movie.ID = movieM.ID
	movie.CreatedAt = movieM.CreatedAt
	movie.UpdatedAt = movieM.UpdatedAt

	return nil
}

// Update overwrites title, genres and year of an existing movie by ID.
// Updating a missing ID affects zero rows, which the store treats as success.
func (repo *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("id = ?", movie.ID).
		Updates(map[string]any{
			"title":  movie.Title,
			"genres": movie.Genres,
			"year":   movie.Year,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update movie")
	}

	return nil
}

// Delete removes a movie by ID.
func (repo *movieRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.db.WithContext(ctx).Delete(&model.MovieModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete movie")
	}

	return nil
}

// List returns a page of movies in the store's natural order.
func (repo *movieRepository) List(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	var models []*model.MovieModel
	if err := repo.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	movies := make([]*entity.Movie, 0, len(models))
	for _, m := range models {
		movies = append(movies, toMovieDomain(m))
	}

	return movies, nil
}

// toMovieDomain converts a GORM MovieModel to a domain Movie entity.
func toMovieDomain(data *model.MovieModel) *entity.Movie {
	if data == nil {
		return nil
	}

	return &entity.Movie{
		ID:        data.ID,
		Title:     data.Title,
		Genres:    data.Genres,
		Year:      data.Year,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromMovieDomain converts a domain Movie entity to a GORM MovieModel for persistence.
func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	if data == nil {
		return nil
	}

	return &model.MovieModel{
		ID:     data.ID,
		Title:  data.Title,
		Genres: data.Genres,
		Year:   data.Year,
	}
}
