package middleware

import (
	"errors"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
)

// AppErrorHandler translates AppError codes raised by the services into JSON
// responses; everything else falls through to echo's default handling.
func AppErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if err := c.JSON(appErr.Code, echo.Map{"message": appErr.Message}); err != nil {
			log.Println("Error writing error response:", err)
		}
		return
	}

	c.Echo().DefaultHTTPErrorHandler(err, c)
}
