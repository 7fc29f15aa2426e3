package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mnavarrosa/ThumbnailBattle/api/middleware"
	"github.com/mnavarrosa/ThumbnailBattle/internal/rating"
)

var RatingService *rating.Service

func RegisterRatingRoutes(g *echo.Group) {
	g.GET("/:videoId", GetRatingsHandler)
}

// GetRatingsHandler answers with the cross-user average and the caller's own
// rating for a thumbnail; either may be null when no comparison happened yet.
func GetRatingsHandler(c echo.Context) error {
	videoID := c.Param("videoId")
	if videoID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "videoId is required")
	}

	t, err := ThumbnailService.GetByYoutubeVideoID(videoID)
	if err != nil {
		return err
	}

	global, err := RatingService.GlobalRating(t.ID)
	if err != nil {
		return err
	}

	userRating, err := RatingService.UserRating(t.ID, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"youtube_video_id": t.YoutubeVideoID,
		"global_rating":    global,
		"user_rating":      userRating,
	})
}
