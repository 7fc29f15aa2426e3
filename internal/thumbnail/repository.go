package thumbnail

import (
	"errors"

	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
	"gorm.io/gorm"
)

type Repository interface {
	Save(t *Thumbnail) (*Thumbnail, error)
	FindByYoutubeVideoID(videoID string) (*Thumbnail, error)
	FindRandom() (*Thumbnail, error)
	FindAllExcept(ids []uint) ([]Thumbnail, error)
	Delete(t *Thumbnail) error
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Save(t *Thumbnail) (*Thumbnail, error) {
	if err := r.db.Create(t).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error saving thumbnail", err)
	}
	return t, nil
}

func (r *GormRepository) FindByYoutubeVideoID(videoID string) (*Thumbnail, error) {
	var t Thumbnail
	result := r.db.Where("youtube_video_id = ?", videoID).First(&t)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting thumbnail", result.Error)
	}
	return &t, nil
}

func (r *GormRepository) FindRandom() (*Thumbnail, error) {
	var t Thumbnail
	result := r.db.Order("RANDOM()").First(&t)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting random thumbnail", result.Error)
	}
	return &t, nil
}

func (r *GormRepository) FindAllExcept(ids []uint) ([]Thumbnail, error) {
	var thumbnails []Thumbnail
	query := r.db
	if len(ids) > 0 {
		query = query.Where("id NOT IN ?", ids)
	}
	if err := query.Find(&thumbnails).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error listing thumbnails", err)
	}
	return thumbnails, nil
}

func (r *GormRepository) Delete(t *Thumbnail) error {
	if err := r.db.Delete(t).Error; err != nil {
		return apperrors.NewAppError(500, "error deleting thumbnail", err)
	}
	return nil
}
