package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mnavarrosa/ThumbnailBattle/api/middleware"
	"github.com/mnavarrosa/ThumbnailBattle/internal/game"
)

const INVALID_REQUEST = "invalid request"

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group) {
	g.POST("", StartGameHandler)
	g.POST("/:id/result", GameResultHandler)
	g.POST("/:id/end", EndGameHandler)
}

func StartGameHandler(c echo.Context) error {
	userID := middleware.UserID(c)

	newGame, err := GameService.Start(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"game": newGame,
	})
}

func GameResultHandler(c echo.Context) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return err
	}

	var payload game.ResultRequest
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if payload.WinnerID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "winner_id is required")
	}

	updated, err := GameService.Result(gameID, payload.WinnerID, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"game": updated,
	})
}

func EndGameHandler(c echo.Context) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return err
	}

	if err := GameService.End(gameID, middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
	})
}

func parseGameID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid game ID")
	}
	return uint(id), nil
}
