package game

import (
	"errors"

	"github.com/mnavarrosa/ThumbnailBattle/internal/apperrors"
	"github.com/mnavarrosa/ThumbnailBattle/internal/rating"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Save(game *Game) (*Game, error)
	FindLatestByUser(userID uint) (*Game, error)
	// Mutate runs fn against the game row under a transaction and persists
	// the result. The rating store handed to fn writes inside the same
	// transaction, so an error from fn rolls everything back.
	Mutate(id uint, fn func(game *Game, ratings rating.Store) error) (*Game, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Save(game *Game) (*Game, error) {
	if err := r.db.Omit(clause.Associations).Create(game).Error; err != nil {
		return nil, apperrors.NewAppError(500, "error saving game", err)
	}
	return game, nil
}

func (r *GormRepository) FindLatestByUser(userID uint) (*Game, error) {
	var game Game
	result := r.db.Where("user_id = ?", userID).
		Order("last_activity DESC").
		First(&game)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, apperrors.NewAppError(500, "error getting latest game", result.Error)
	}
	return &game, nil
}

func (r *GormRepository) Mutate(id uint, fn func(game *Game, ratings rating.Store) error) (*Game, error) {
	var game Game
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Thumbnail1").
			Preload("Thumbnail2").
			First(&game, id)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		if result.Error != nil {
			return apperrors.NewAppError(500, "error getting game", result.Error)
		}

		if err := fn(&game, rating.NewGormStore(tx)); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Save(&game).Error; err != nil {
			return apperrors.NewAppError(500, "error saving game", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &game, nil
}
