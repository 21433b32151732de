// Package response holds the JSON body shapes of the public API.
package response

import "github.com/labstack/echo/v4"

// Error writes the error body `{"error": message}` with the given status.
// No internal detail ever travels through here.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Message writes `{"message": message}` with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]string{"message": message})
}

// JSON writes an arbitrary payload with the given status.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}
