package entity

import "time"

// Movie represents a single catalog entry.
type Movie struct {
	ID        int64     // Serial primary key assigned by the database.
	Title     string    // Movie title, required.
	Genres    string    // Comma-separated genre list, required.
	Year      int       // Release year, required.
	CreatedAt time.Time // Timestamp of when this entry was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
