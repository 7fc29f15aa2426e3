package rating

import (
	"math/rand"

	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
)

var ErrNoEligibleOpponent = apperrors.NewAppError(404, "no eligible opponent thumbnail available", nil)

// Selector picks the next thumbnail to pair against a subject. The draw is
// uniform over the eligible pool; subject and exclude are never returned.
type Selector struct {
	thumbnails thumbnail.Repository
}

func NewSelector(thumbnails thumbnail.Repository) *Selector {
	return &Selector{thumbnails: thumbnails}
}

func (s *Selector) PickOpponent(subject *thumbnail.Thumbnail, userID uint, exclude *thumbnail.Thumbnail) (*thumbnail.Thumbnail, error) {
	excluded := []uint{subject.ID}
	if exclude != nil {
		excluded = append(excluded, exclude.ID)
	}

	pool, err := s.thumbnails.FindAllExcept(excluded)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrNoEligibleOpponent
	}

	picked := pool[rand.Intn(len(pool))]
	return &picked, nil
}
