package thumbnail

import (
	"fmt"

	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
)

var (
	ErrEmptyThumbnails    = apperrors.NewAppError(404, "there are no thumbnails available", nil)
	ErrThumbnailNotFound  = apperrors.NewAppError(404, "thumbnail with provided youtube video id was not found", nil)
	ErrThumbnailExists    = apperrors.NewAppError(409, "thumbnail with provided youtube video id already exists", nil)
	ErrNotThumbnailOwner  = apperrors.NewAppError(403, "you are not the owner of the thumbnail", nil)
	ErrInvalidYoutubeID   = apperrors.NewAppError(400, "youtube video id is required", nil)
)

const thumbnailURLFormat = "https://i.ytimg.com/vi/%s/maxresdefault.jpg"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(videoID string, userID uint) (*Thumbnail, error) {
	if videoID == "" {
		return nil, ErrInvalidYoutubeID
	}

	existing, err := s.repo.FindByYoutubeVideoID(videoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrThumbnailExists
	}

	t := &Thumbnail{
		YoutubeVideoID: videoID,
		URL:            fmt.Sprintf(thumbnailURLFormat, videoID),
		AddedByID:      userID,
	}

	return s.repo.Save(t)
}

func (s *Service) Delete(videoID string, userID uint) error {
	t, err := s.repo.FindByYoutubeVideoID(videoID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrThumbnailNotFound
	}

	if t.AddedByID != userID {
		return ErrNotThumbnailOwner
	}

	return s.repo.Delete(t)
}

func (s *Service) GetByYoutubeVideoID(videoID string) (*Thumbnail, error) {
	t, err := s.repo.FindByYoutubeVideoID(videoID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrThumbnailNotFound
	}
	return t, nil
}

// GetRandomThumbnail supplies the first slot of a new game.
func (s *Service) GetRandomThumbnail() (*Thumbnail, error) {
	t, err := s.repo.FindRandom()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrEmptyThumbnails
	}
	return t, nil
}
