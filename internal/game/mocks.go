package game

import (
	"github.com/mnavarrosa/ThumbnailBattle/internal/live"
	"github.com/mnavarrosa/ThumbnailBattle/internal/rating"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
	"github.com/stretchr/testify/mock"
)

type GameRepositoryMock struct {
	mock.Mock
	// Ratings is the store handed to Mutate callbacks.
	Ratings rating.Store
}

func (m *GameRepositoryMock) Save(game *Game) (*Game, error) {
	args := m.Called(game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

func (m *GameRepositoryMock) FindLatestByUser(userID uint) (*Game, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Game), args.Error(1)
}

// Mutate mirrors the transactional contract: fn runs against the configured
// game and an error from fn discards the change.
func (m *GameRepositoryMock) Mutate(id uint, fn func(game *Game, ratings rating.Store) error) (*Game, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	game := args.Get(0).(*Game)
	if err := fn(game, m.Ratings); err != nil {
		return nil, err
	}
	return game, nil
}

type ThumbnailPickerMock struct {
	mock.Mock
}

func (m *ThumbnailPickerMock) GetRandomThumbnail() (*thumbnail.Thumbnail, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*thumbnail.Thumbnail), args.Error(1)
}

type OpponentSelectorMock struct {
	mock.Mock
}

func (m *OpponentSelectorMock) PickOpponent(subject *thumbnail.Thumbnail, userID uint, exclude *thumbnail.Thumbnail) (*thumbnail.Thumbnail, error) {
	args := m.Called(subject, userID, exclude)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*thumbnail.Thumbnail), args.Error(1)
}

type RatingServiceMock struct {
	mock.Mock
}

func (m *RatingServiceMock) UpdateRatings(store rating.Store, winner, loser *thumbnail.Thumbnail, userID uint) error {
	args := m.Called(store, winner, loser, userID)
	return args.Error(0)
}

func (m *RatingServiceMock) GlobalRating(thumbnailID uint) (*float64, error) {
	args := m.Called(thumbnailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

type RatingPublisherMock struct {
	mock.Mock
}

func (m *RatingPublisherMock) PublishRatingUpdates(updates []live.RatingUpdate) {
	m.Called(updates)
}
