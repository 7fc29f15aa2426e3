package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mnavarrosa/ThumbnailBattle/api/middleware"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
)

var ThumbnailService *thumbnail.Service

func RegisterThumbnailRoutes(g *echo.Group) {
	g.POST("", CreateThumbnailHandler)
	g.DELETE("/:videoId", DeleteThumbnailHandler)
}

func CreateThumbnailHandler(c echo.Context) error {
	var payload thumbnail.ThumbnailRequest
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	created, err := ThumbnailService.Create(payload.YoutubeVideoID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"thumbnail": created,
	})
}

func DeleteThumbnailHandler(c echo.Context) error {
	videoID := c.Param("videoId")
	if videoID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "videoId is required")
	}

	if err := ThumbnailService.Delete(videoID, middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
	})
}
