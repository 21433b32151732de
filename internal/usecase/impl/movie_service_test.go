package impl

import (
	"context"
	"testing"

	"moviedb/internal/domain/entity"
	domainerrors "moviedb/internal/domain/errors"
	mockRepo "moviedb/internal/mocks/repository"
	"moviedb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMovieService(t *testing.T) (usecase.MovieUsecase, *mockRepo.MockMovieRepository) {
	movieRepo := mockRepo.NewMockMovieRepository(t)
	service := NewMovieService(MovieServiceParams{
		MovieRepo: movieRepo,
		Logger:    newDiscardLogger(),
	})

	return service, movieRepo
}

func TestMovieService_CreateMovie(t *testing.T) {
	service, movieRepo := createTestMovieService(t)

	movieRepo.On("Create", mock.Anything, mock.MatchedBy(func(movie *entity.Movie) bool {
		return movie.Title == "Inception" && movie.Genres == "sci-fi,thriller" && movie.Year == 2010
	})).Return(nil)

	err := service.CreateMovie(context.Background(), &usecase.MovieInput{
		Title:  "Inception",
		Genres: "sci-fi,thriller",
		Year:   2010,
	})
	assert.NoError(t, err)
}

func TestMovieService_CreateMovie_PersistenceFailure(t *testing.T) {
	service, movieRepo := createTestMovieService(t)

	movieRepo.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to create movie"))

	err := service.CreateMovie(context.Background(), &usecase.MovieInput{
		Title:  "Inception",
		Genres: "sci-fi",
		Year:   2010,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternal))
}

func TestMovieService_UpdateMovie(t *testing.T) {
	service, movieRepo := createTestMovieService(t)

	movieRepo.On("Update", mock.Anything, mock.MatchedBy(func(movie *entity.Movie) bool {
		return movie.ID == 42 && movie.Title == "Inception" && movie.Year == 2010
	})).Return(nil)

	err := service.UpdateMovie(context.Background(), 42, &usecase.MovieInput{
		Title:  "Inception",
		Genres: "sci-fi",
		Year:   2010,
	})
	assert.NoError(t, err)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	service, movieRepo := createTestMovieService(t)

	movieRepo.On("Delete", mock.Anything, int64(42)).Return(nil)

	assert.NoError(t, service.DeleteMovie(context.Background(), 42))
}

func TestMovieService_ListMovies_Pagination(t *testing.T) {
	service, movieRepo := createTestMovieService(t)

	stored := []*entity.Movie{
		{ID: 11, Title: "Movie 11", Genres: "drama", Year: 2001},
		{ID: 12, Title: "Movie 12", Genres: "drama", Year: 2002},
	}
	// page=2&limit=10 means rows at offset 10.
	movieRepo.On("List", mock.Anything, 10, 10).Return(stored, nil)

	outputs, err := service.ListMovies(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, int64(11), outputs[0].ID)
	assert.Equal(t, "Movie 12", outputs[1].Title)
}

func TestMovieService_ListMovies_Defaults(t *testing.T) {
	service, movieRepo := createTestMovieService(t)

	movieRepo.On("List", mock.Anything, 0, 10).Return([]*entity.Movie{}, nil)

	outputs, err := service.ListMovies(context.Background(), 0, -5)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}
