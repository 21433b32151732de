package handler

import (
	"net/http"
	"strconv"

	"moviedb/internal/delivery/http/response"
	"moviedb/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// movieValidationMessage mirrors the original API's localized 400 body.
const movieValidationMessage = "Harap masukkan title, genres, dan year"

// MovieHandler holds dependencies for movie-related handlers.
type MovieHandler struct {
	uc usecase.MovieUsecase
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(uc usecase.MovieUsecase) *MovieHandler {
	return &MovieHandler{uc: uc}
}

// Create adds a new movie. Success is 201 with an empty body.
func (h *MovieHandler) Create(c echo.Context) error {
	input, err := h.bindMovieInput(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, movieValidationMessage)
	}

	if err := h.uc.CreateMovie(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusCreated)
}

// Update overwrites a movie by ID. Success is 200 with an empty body.
func (h *MovieHandler) Update(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, movieValidationMessage)
	}

	input, err := h.bindMovieInput(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, movieValidationMessage)
	}

	if err := h.uc.UpdateMovie(c.Request().Context(), id, input); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// Delete removes a movie by ID. Success is 200 with an empty body.
func (h *MovieHandler) Delete(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, movieValidationMessage)
	}

	if err := h.uc.DeleteMovie(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

// List returns one page of movies.
func (h *MovieHandler) List(c echo.Context) error {
	page, limit := pageQuery(c)

	movies, err := h.uc.ListMovies(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, movies)
}

func (h *MovieHandler) bindMovieInput(c echo.Context) (*usecase.MovieInput, error) {
	var input usecase.MovieInput
	if err := c.Bind(&input); err != nil {
		return nil, err
	}
	if err := c.Validate(&input); err != nil {
		return nil, err
	}

	return &input, nil
}

func movieID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// pageQuery reads the page and limit query parameters, falling back to the
// defaults (page 1, limit 10) for absent or non-numeric values.
func pageQuery(c echo.Context) (page, limit int) {
	page = 1
	limit = 10

	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v >= 1 {
		limit = v
	}

	return page, limit
}
