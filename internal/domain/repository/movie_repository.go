package repository

import (
	"context"

	"moviedb/internal/domain/entity"
)

// MovieRepository defines persistence operations for the movie catalog.
type MovieRepository interface {
	// Create persists a new movie. The entity's ID and timestamps are
	// populated from the database on success.
	Create(ctx context.Context, movie *entity.Movie) error

	// Update overwrites title, genres and year of an existing movie by ID.
	Update(ctx context.Context, movie *entity.Movie) error

	// Delete removes a movie by ID. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id int64) error

	// List returns a page of movies in the store's natural order.
	List(ctx context.Context, offset, limit int) ([]*entity.Movie, error)
}
