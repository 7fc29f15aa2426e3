package game

import (
	"log"
	"time"

	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
	"github.com/mnavarrosa/ThumbnailBattle/internal/config"
	"github.com/mnavarrosa/ThumbnailBattle/internal/live"
	"github.com/mnavarrosa/ThumbnailBattle/internal/rating"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
	"github.com/mnavarrosa/ThumbnailBattle/pkg/clock"
)

var (
	ErrGameNotFound     = apperrors.NewAppError(404, "game with provided id was not found", nil)
	ErrNotGameOwner     = apperrors.NewAppError(403, "you are not the owner of the game", nil)
	ErrGameNotConcluded = apperrors.NewAppError(400, "your previous game has not been concluded yet", nil)
	ErrGameConcluded    = apperrors.NewAppError(400, "game has already been concluded", nil)
	ErrGameAlreadyEnded = apperrors.NewAppError(400, "game has already ended", nil)
	ErrInvalidWinner    = apperrors.NewAppError(400, "winner id does not match any of the game thumbnails", nil)
)

type ThumbnailPicker interface {
	GetRandomThumbnail() (*thumbnail.Thumbnail, error)
}

type OpponentSelector interface {
	PickOpponent(subject *thumbnail.Thumbnail, userID uint, exclude *thumbnail.Thumbnail) (*thumbnail.Thumbnail, error)
}

type RatingService interface {
	UpdateRatings(store rating.Store, winner, loser *thumbnail.Thumbnail, userID uint) error
	GlobalRating(thumbnailID uint) (*float64, error)
}

type RatingPublisher interface {
	PublishRatingUpdates(updates []live.RatingUpdate)
}

type GameService struct {
	repo       Repository
	thumbnails ThumbnailPicker
	selector   OpponentSelector
	ratings    RatingService
	publisher  RatingPublisher
	clock      clock.Clock
	cfg        config.Game
}

func NewGameService(repo Repository, thumbnails ThumbnailPicker, selector OpponentSelector,
	ratings RatingService, publisher RatingPublisher, clock clock.Clock, cfg config.Game) *GameService {
	return &GameService{
		repo:       repo,
		thumbnails: thumbnails,
		selector:   selector,
		ratings:    ratings,
		publisher:  publisher,
		clock:      clock,
		cfg:        cfg,
	}
}

// Start opens a new game for the user. The user's most recent game must be
// ended or expired; expired games are superseded, never reopened.
func (s *GameService) Start(userID uint) (*Game, error) {
	latest, err := s.repo.FindLatestByUser(userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if latest != nil && !latest.HasEnded && now.Before(latest.LastActivity.Add(s.duration())) {
		return nil, ErrGameNotConcluded
	}

	thumbnail1, err := s.thumbnails.GetRandomThumbnail()
	if err != nil {
		return nil, err
	}

	thumbnail2, err := s.selector.PickOpponent(thumbnail1, userID, nil)
	if err != nil {
		return nil, err
	}

	game := &Game{
		UserID:       userID,
		Thumbnail1ID: thumbnail1.ID,
		Thumbnail1:   *thumbnail1,
		Thumbnail2ID: thumbnail2.ID,
		Thumbnail2:   *thumbnail2,
		LastActivity: now,
	}

	return s.repo.Save(game)
}

// Result records the winner of the current round, updates the user's ratings
// for both thumbnails and swaps a fresh opponent into the loser's slot. The
// whole round runs inside the game row's transaction.
func (s *GameService) Result(gameID, winnerID, userID uint) (*Game, error) {
	var winner, loser thumbnail.Thumbnail

	game, err := s.repo.Mutate(gameID, func(g *Game, ratings rating.Store) error {
		if g.UserID != userID {
			return ErrNotGameOwner
		}

		now := s.clock.Now()
		if g.HasEnded || !now.Before(g.LastActivity.Add(s.duration())) {
			return ErrGameConcluded
		}

		if winnerID != g.Thumbnail1ID && winnerID != g.Thumbnail2ID {
			return ErrInvalidWinner
		}

		if winnerID == g.Thumbnail1ID {
			winner, loser = g.Thumbnail1, g.Thumbnail2
		} else {
			winner, loser = g.Thumbnail2, g.Thumbnail1
		}

		if err := s.ratings.UpdateRatings(ratings, &winner, &loser, userID); err != nil {
			return err
		}

		opponent, err := s.selector.PickOpponent(&winner, userID, &loser)
		if err != nil {
			return err
		}

		// only the slot that held the loser changes
		if g.Thumbnail2ID == loser.ID {
			g.Thumbnail2 = *opponent
			g.Thumbnail2ID = opponent.ID
		} else {
			g.Thumbnail1 = *opponent
			g.Thumbnail1ID = opponent.ID
		}

		g.LastActivity = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishRatingUpdates(winner, loser)

	return game, nil
}

// End flags the game as finished. A second call fails, it does not silently
// succeed.
func (s *GameService) End(gameID, userID uint) error {
	_, err := s.repo.Mutate(gameID, func(g *Game, _ rating.Store) error {
		if g.UserID != userID {
			return ErrNotGameOwner
		}
		if g.HasEnded {
			return ErrGameAlreadyEnded
		}
		g.HasEnded = true
		return nil
	})
	return err
}

func (s *GameService) duration() time.Duration {
	return time.Duration(s.cfg.DurationMinutes) * time.Minute
}

func (s *GameService) publishRatingUpdates(thumbnails ...thumbnail.Thumbnail) {
	updates := make([]live.RatingUpdate, 0, len(thumbnails))
	for _, t := range thumbnails {
		global, err := s.ratings.GlobalRating(t.ID)
		if err != nil {
			log.Println("Error computing global rating for live update:", err)
			continue
		}
		updates = append(updates, live.RatingUpdate{
			YoutubeVideoID: t.YoutubeVideoID,
			GlobalRating:   global,
		})
	}
	s.publisher.PublishRatingUpdates(updates)
}
