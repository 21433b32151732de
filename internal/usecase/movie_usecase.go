package usecase

import (
	"context"

	"moviedb/internal/domain/entity"
)

// MovieInput defines the data required to create or update a movie.
// All three fields are required; a zero year counts as missing.
type MovieInput struct {
	Title  string `json:"title" validate:"required"`
	Genres string `json:"genres" validate:"required"`
	Year   int    `json:"year" validate:"required"`
}

// MovieOutput is the listing representation of a movie.
type MovieOutput struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Genres string `json:"genres"`
	Year   int    `json:"year"`
}

// MovieUsecase defines the interface for movie catalog operations.
type MovieUsecase interface {
	CreateMovie(ctx context.Context, input *MovieInput) error
	UpdateMovie(ctx context.Context, id int64, input *MovieInput) error
	DeleteMovie(ctx context.Context, id int64) error

	// ListMovies returns one page of movies. Page numbering starts at 1.
	ListMovies(ctx context.Context, page, limit int) ([]*MovieOutput, error)
}

// NewMovieFromInput builds a movie entity from validated input.
func NewMovieFromInput(input *MovieInput) *entity.Movie {
	return &entity.Movie{
		Title:  input.Title,
		Genres: input.Genres,
		Year:   input.Year,
	}
}
