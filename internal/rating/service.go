package rating

import (
	"math"

	"github.com/mnavarrosa/ThumbnailBattle/internal/config"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
)

type Service struct {
	store Store
	cfg   config.Rating
}

func NewService(store Store, cfg config.Rating) *Service {
	return &Service{store: store, cfg: cfg}
}

// UpdateRatings applies one comparison outcome to the user's ratings of the
// winner and the loser. It writes through store, not the service's own store,
// because result submission runs it inside the game row's transaction.
func (s *Service) UpdateRatings(store Store, winner, loser *thumbnail.Thumbnail, userID uint) error {
	winnerRating, err := s.findOrDefault(store, userID, winner.ID)
	if err != nil {
		return err
	}
	loserRating, err := s.findOrDefault(store, userID, loser.ID)
	if err != nil {
		return err
	}

	expectedWinner := expectedScore(winnerRating.Points, loserRating.Points)
	delta := s.cfg.KFactor * (1 - expectedWinner)

	winnerRating.Points += delta
	loserRating.Points -= delta

	if err := store.Save(winnerRating); err != nil {
		return err
	}
	return store.Save(loserRating)
}

func (s *Service) GlobalRating(thumbnailID uint) (*float64, error) {
	return s.store.AverageForThumbnail(thumbnailID)
}

// UserRating reports nil when the user never compared the thumbnail. The
// implicit base points are not leaked here; absence is observable.
func (s *Service) UserRating(thumbnailID, userID uint) (*float64, error) {
	r, err := s.store.FindByUserAndThumbnail(userID, thumbnailID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return &r.Points, nil
}

func (s *Service) findOrDefault(store Store, userID, thumbnailID uint) (*Rating, error) {
	r, err := store.FindByUserAndThumbnail(userID, thumbnailID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = &Rating{
			UserID:      userID,
			ThumbnailID: thumbnailID,
			Points:      s.cfg.BasePoints,
		}
	}
	return r, nil
}

// expectedScore is the logistic expectation of winnerPoints beating
// loserPoints; the loser's expectation is its complement.
func expectedScore(winnerPoints, loserPoints float64) float64 {
	return 1 / (1 + math.Pow(10, (loserPoints-winnerPoints)/400))
}
