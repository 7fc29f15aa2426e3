package rating

import (
	"database/sql"
	"errors"

	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
	"gorm.io/gorm"
)

type Store interface {
	FindByUserAndThumbnail(userID, thumbnailID uint) (*Rating, error)
	Save(r *Rating) error
	AverageForThumbnail(thumbnailID uint) (*float64, error)
}

type GormStore struct {
	db *gorm.DB
}

// NewGormStore binds the store to db, which may be a transaction handle so
// rating writes commit or roll back together with the caller's game update.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByUserAndThumbnail(userID, thumbnailID uint) (*Rating, error) {
	var r Rating
	result := s.db.Where("user_id = ? AND thumbnail_id = ?", userID, thumbnailID).First(&r)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting rating", result.Error)
	}
	return &r, nil
}

func (s *GormStore) Save(r *Rating) error {
	if err := s.db.Save(r).Error; err != nil {
		return apperrors.NewAppError(500, "error saving rating", err)
	}
	return nil
}

func (s *GormStore) AverageForThumbnail(thumbnailID uint) (*float64, error) {
	var avg sql.NullFloat64
	err := s.db.Model(&Rating{}).
		Select("AVG(points)").
		Where("thumbnail_id = ?", thumbnailID).
		Scan(&avg).Error
	if err != nil {
		return nil, apperrors.NewAppError(500, "error computing global rating", err)
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}
