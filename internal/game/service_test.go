package game

import (
	"testing"
	"time"

	"github.com/mnavarrosa/ThumbnailBattle/internal/config"
	"github.com/mnavarrosa/ThumbnailBattle/internal/live"
	"github.com/mnavarrosa/ThumbnailBattle/internal/rating"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type gameFixture struct {
	repo      *GameRepositoryMock
	picker    *ThumbnailPickerMock
	selector  *OpponentSelectorMock
	ratings   *RatingServiceMock
	publisher *RatingPublisherMock
	clock     *fixedClock
	service   *GameService
}

func newGameFixture() *gameFixture {
	f := &gameFixture{
		repo:      &GameRepositoryMock{Ratings: &rating.StoreMock{}},
		picker:    &ThumbnailPickerMock{},
		selector:  &OpponentSelectorMock{},
		ratings:   &RatingServiceMock{},
		publisher: &RatingPublisherMock{},
		clock:     &fixedClock{now: baseTime},
	}
	f.service = NewGameService(f.repo, f.picker, f.selector, f.ratings, f.publisher,
		f.clock, config.Game{DurationMinutes: 30})
	return f
}

func (f *gameFixture) expectRatingUpdates(winner, loser *thumbnail.Thumbnail) {
	winnerGlobal, loserGlobal := 1416.0, 1384.0
	f.ratings.On("UpdateRatings", mock.Anything, winner, loser, mock.AnythingOfType("uint")).Return(nil)
	f.ratings.On("GlobalRating", winner.ID).Return(&winnerGlobal, nil)
	f.ratings.On("GlobalRating", loser.ID).Return(&loserGlobal, nil)
	f.publisher.On("PublishRatingUpdates", mock.Anything).Return()
}

func activeGame(userID uint) *Game {
	return &Game{
		ID:           42,
		UserID:       userID,
		Thumbnail1ID: 1,
		Thumbnail1:   thumbnail.Thumbnail{ID: 1, YoutubeVideoID: "vid1"},
		Thumbnail2ID: 2,
		Thumbnail2:   thumbnail.Thumbnail{ID: 2, YoutubeVideoID: "vid2"},
		LastActivity: baseTime,
	}
}

func TestStart_NewGame(t *testing.T) {
	f := newGameFixture()

	t1 := &thumbnail.Thumbnail{ID: 1, YoutubeVideoID: "vid1"}
	t2 := &thumbnail.Thumbnail{ID: 2, YoutubeVideoID: "vid2"}

	f.repo.On("FindLatestByUser", uint(9)).Return(nil, nil)
	f.picker.On("GetRandomThumbnail").Return(t1, nil)
	f.selector.On("PickOpponent", t1, uint(9), (*thumbnail.Thumbnail)(nil)).Return(t2, nil)
	f.repo.On("Save", mock.AnythingOfType("*game.Game")).
		Return(&Game{ID: 1, UserID: 9, Thumbnail1ID: 1, Thumbnail1: *t1, Thumbnail2ID: 2, Thumbnail2: *t2, LastActivity: baseTime}, nil)

	game, err := f.service.Start(9)
	require.NoError(t, err)
	assert.Equal(t, uint(1), game.Thumbnail1ID)
	assert.Equal(t, uint(2), game.Thumbnail2ID)
	assert.NotEqual(t, game.Thumbnail1ID, game.Thumbnail2ID)
	assert.Equal(t, baseTime, game.LastActivity)
	assert.False(t, game.HasEnded)
	f.repo.AssertExpectations(t)
}

func TestStart_PreviousGameStillActive(t *testing.T) {
	f := newGameFixture()

	previous := activeGame(9)
	previous.LastActivity = baseTime.Add(-5 * time.Minute)
	f.repo.On("FindLatestByUser", uint(9)).Return(previous, nil)

	_, err := f.service.Start(9)
	assert.ErrorIs(t, err, ErrGameNotConcluded)
	f.repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestStart_AfterEndedGame(t *testing.T) {
	f := newGameFixture()

	previous := activeGame(9)
	previous.HasEnded = true
	f.repo.On("FindLatestByUser", uint(9)).Return(previous, nil)

	t1 := &thumbnail.Thumbnail{ID: 3, YoutubeVideoID: "vid3"}
	t2 := &thumbnail.Thumbnail{ID: 4, YoutubeVideoID: "vid4"}
	f.picker.On("GetRandomThumbnail").Return(t1, nil)
	f.selector.On("PickOpponent", t1, uint(9), (*thumbnail.Thumbnail)(nil)).Return(t2, nil)
	f.repo.On("Save", mock.AnythingOfType("*game.Game")).
		Return(&Game{ID: 2, UserID: 9}, nil)

	_, err := f.service.Start(9)
	assert.NoError(t, err)
}

func TestStart_AfterExpiredGame(t *testing.T) {
	f := newGameFixture()

	previous := activeGame(9)
	previous.LastActivity = baseTime.Add(-31 * time.Minute)
	f.repo.On("FindLatestByUser", uint(9)).Return(previous, nil)

	t1 := &thumbnail.Thumbnail{ID: 3, YoutubeVideoID: "vid3"}
	t2 := &thumbnail.Thumbnail{ID: 4, YoutubeVideoID: "vid4"}
	f.picker.On("GetRandomThumbnail").Return(t1, nil)
	f.selector.On("PickOpponent", t1, uint(9), (*thumbnail.Thumbnail)(nil)).Return(t2, nil)
	f.repo.On("Save", mock.AnythingOfType("*game.Game")).
		Return(&Game{ID: 2, UserID: 9}, nil)

	_, err := f.service.Start(9)
	assert.NoError(t, err)
}

func TestStart_NoEligibleOpponent(t *testing.T) {
	f := newGameFixture()

	t1 := &thumbnail.Thumbnail{ID: 1, YoutubeVideoID: "vid1"}
	f.repo.On("FindLatestByUser", uint(9)).Return(nil, nil)
	f.picker.On("GetRandomThumbnail").Return(t1, nil)
	f.selector.On("PickOpponent", t1, uint(9), (*thumbnail.Thumbnail)(nil)).
		Return(nil, rating.ErrNoEligibleOpponent)

	_, err := f.service.Start(9)
	assert.ErrorIs(t, err, rating.ErrNoEligibleOpponent)
	f.repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestResult_ReplacesLoserSlot(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	winner := &game.Thumbnail1
	loser := game.Thumbnail2
	replacement := &thumbnail.Thumbnail{ID: 7, YoutubeVideoID: "vid7"}

	f.clock.now = baseTime.Add(10 * time.Minute)
	f.repo.On("Mutate", uint(42)).Return(game, nil)
	f.expectRatingUpdates(winner, &loser)
	f.selector.On("PickOpponent", winner, uint(9), &loser).Return(replacement, nil)

	updated, err := f.service.Result(42, 1, 9)
	require.NoError(t, err)

	// winner slot untouched, loser slot replaced
	assert.Equal(t, uint(1), updated.Thumbnail1ID)
	assert.Equal(t, uint(7), updated.Thumbnail2ID)
	assert.NotEqual(t, updated.Thumbnail1ID, updated.Thumbnail2ID)
	assert.Equal(t, baseTime.Add(10*time.Minute), updated.LastActivity)
	f.ratings.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestResult_WinnerInSecondSlot(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	winner := &game.Thumbnail2
	loser := game.Thumbnail1
	replacement := &thumbnail.Thumbnail{ID: 8, YoutubeVideoID: "vid8"}

	f.repo.On("Mutate", uint(42)).Return(game, nil)
	f.expectRatingUpdates(winner, &loser)
	f.selector.On("PickOpponent", winner, uint(9), &loser).Return(replacement, nil)

	updated, err := f.service.Result(42, 2, 9)
	require.NoError(t, err)

	assert.Equal(t, uint(8), updated.Thumbnail1ID)
	assert.Equal(t, uint(2), updated.Thumbnail2ID)
}

func TestResult_GameNotFound(t *testing.T) {
	f := newGameFixture()

	f.repo.On("Mutate", uint(42)).Return(nil, ErrGameNotFound)

	_, err := f.service.Result(42, 1, 9)
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestResult_NotOwner(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	game.HasEnded = true // ownership is checked before game state
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	_, err := f.service.Result(42, 1, 5)
	assert.ErrorIs(t, err, ErrNotGameOwner)
	f.ratings.AssertNotCalled(t, "UpdateRatings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResult_EndedGame(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	game.HasEnded = true
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	_, err := f.service.Result(42, 1, 9)
	assert.ErrorIs(t, err, ErrGameConcluded)
}

func TestResult_ExpiryWindow(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	winner := &game.Thumbnail1
	loser := game.Thumbnail2
	replacement := &thumbnail.Thumbnail{ID: 7, YoutubeVideoID: "vid7"}

	f.repo.On("Mutate", uint(42)).Return(game, nil)
	f.expectRatingUpdates(winner, &loser)
	f.selector.On("PickOpponent", winner, uint(9), &loser).Return(replacement, nil)

	// minute 29 of a 30 minute window: still active, refreshes the window
	f.clock.now = baseTime.Add(29 * time.Minute)
	_, err := f.service.Result(42, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, baseTime.Add(29*time.Minute), game.LastActivity)

	// 31 minutes after the refresh: expired
	f.clock.now = game.LastActivity.Add(31 * time.Minute)
	_, err = f.service.Result(42, 1, 9)
	assert.ErrorIs(t, err, ErrGameConcluded)
}

func TestResult_ExpiresExactlyAtBoundary(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	f.clock.now = baseTime.Add(30 * time.Minute)
	_, err := f.service.Result(42, 1, 9)
	assert.ErrorIs(t, err, ErrGameConcluded)
}

func TestResult_InvalidWinner(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	_, err := f.service.Result(42, 99, 9)
	assert.ErrorIs(t, err, ErrInvalidWinner)
	f.ratings.AssertNotCalled(t, "UpdateRatings", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResult_OpponentPickFailureRollsBack(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	winner := &game.Thumbnail1
	loser := game.Thumbnail2

	f.repo.On("Mutate", uint(42)).Return(game, nil)
	f.ratings.On("UpdateRatings", mock.Anything, winner, &loser, uint(9)).Return(nil)
	f.selector.On("PickOpponent", winner, uint(9), &loser).
		Return(nil, rating.ErrNoEligibleOpponent)

	_, err := f.service.Result(42, 1, 9)
	assert.ErrorIs(t, err, rating.ErrNoEligibleOpponent)
	f.publisher.AssertNotCalled(t, "PublishRatingUpdates", mock.Anything)
}

func TestResult_PublishesGlobalRatings(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	winner := &game.Thumbnail1
	loser := game.Thumbnail2
	replacement := &thumbnail.Thumbnail{ID: 7, YoutubeVideoID: "vid7"}

	winnerGlobal, loserGlobal := 1510.0, 1490.0
	f.repo.On("Mutate", uint(42)).Return(game, nil)
	f.ratings.On("UpdateRatings", mock.Anything, winner, &loser, uint(9)).Return(nil)
	f.ratings.On("GlobalRating", uint(1)).Return(&winnerGlobal, nil)
	f.ratings.On("GlobalRating", uint(2)).Return(&loserGlobal, nil)
	f.selector.On("PickOpponent", winner, uint(9), &loser).Return(replacement, nil)
	f.publisher.On("PublishRatingUpdates", mock.MatchedBy(func(updates []live.RatingUpdate) bool {
		return len(updates) == 2 &&
			updates[0].YoutubeVideoID == "vid1" &&
			updates[1].YoutubeVideoID == "vid2"
	})).Return()

	_, err := f.service.Result(42, 1, 9)
	require.NoError(t, err)
	f.publisher.AssertExpectations(t)
}

func TestEnd_SetsFlagOnceThenFails(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	err := f.service.End(42, 9)
	require.NoError(t, err)
	assert.True(t, game.HasEnded)

	err = f.service.End(42, 9)
	assert.ErrorIs(t, err, ErrGameAlreadyEnded)
}

func TestEnd_NotOwner(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	err := f.service.End(42, 5)
	assert.ErrorIs(t, err, ErrNotGameOwner)
	assert.False(t, game.HasEnded)
}

func TestEnd_ExpiredGameCanStillBeEnded(t *testing.T) {
	f := newGameFixture()

	game := activeGame(9)
	game.LastActivity = baseTime.Add(-2 * time.Hour)
	f.repo.On("Mutate", uint(42)).Return(game, nil)

	err := f.service.End(42, 9)
	assert.NoError(t, err)
	assert.True(t, game.HasEnded)
}
