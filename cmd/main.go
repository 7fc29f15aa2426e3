package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	api_middleware "github.com/mnavarrosa/ThumbnailBattle/api/middleware"
	v1 "github.com/mnavarrosa/ThumbnailBattle/api/v1"
	"github.com/mnavarrosa/ThumbnailBattle/internal/config"
	"github.com/mnavarrosa/ThumbnailBattle/internal/game"
	"github.com/mnavarrosa/ThumbnailBattle/internal/live"
	"github.com/mnavarrosa/ThumbnailBattle/internal/rating"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
	"github.com/mnavarrosa/ThumbnailBattle/internal/user"
	"github.com/mnavarrosa/ThumbnailBattle/pkg/clock"
	"github.com/mnavarrosa/ThumbnailBattle/pkg/db"
	"github.com/mnavarrosa/ThumbnailBattle/websocket"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(&user.User{}, &thumbnail.Thumbnail{}, &rating.Rating{}, &game.Game{})

	settings := config.Load()

	userRepo := user.NewGormUserRepository(db.DB)
	thumbnailRepo := thumbnail.NewGormRepository(db.DB)
	ratingStore := rating.NewGormStore(db.DB)

	userService := user.NewUserService(userRepo)
	thumbnailService := thumbnail.NewService(thumbnailRepo)
	ratingService := rating.NewService(ratingStore, settings.Rating)
	selector := rating.NewSelector(thumbnailRepo)

	broker := live.NewBroker(db.Rdb)
	if err := broker.Subscribe(func(event live.Event) {
		websocket.Broadcast(event)
	}); err != nil {
		log.Fatalf("error subscribing to rating updates: %v", err)
	}

	gameRepo := game.NewGormRepository(db.DB)
	gameService := game.NewGameService(gameRepo, thumbnailService, selector,
		ratingService, broker, clock.System{}, settings.Game)

	v1.UserService = userService
	v1.ThumbnailService = thumbnailService
	v1.RatingService = ratingService
	v1.GameService = gameService

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = api_middleware.AppErrorHandler

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))

	jwtMiddleware := api_middleware.SetupJWTMiddleware()

	games := api.Group("/games")
	games.Use(jwtMiddleware)
	v1.RegisterGameRoutes(games)

	thumbnails := api.Group("/thumbnails")
	thumbnails.Use(jwtMiddleware)
	v1.RegisterThumbnailRoutes(thumbnails)

	ratings := api.Group("/ratings")
	ratings.Use(jwtMiddleware)
	v1.RegisterRatingRoutes(ratings)

	e.GET("/live", websocket.LiveHandler)

	e.Logger.Fatal(e.Start(":8080"))
}
