package game

import (
	"time"

	"github.com/mnavarrosa/ThumbnailBattle/internal/thumbnail"
)

// Game is one comparison session. The two slots are named so that recording a
// result can replace exactly the slot that held the loser. A game without
// HasEnded set is still playable until LastActivity plus the configured
// duration has passed; every recorded result refreshes LastActivity.
type Game struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	UserID       uint                `gorm:"not null;index" json:"user_id"`
	Thumbnail1ID uint                `gorm:"not null" json:"-"`
	Thumbnail1   thumbnail.Thumbnail `json:"thumbnail1"`
	Thumbnail2ID uint                `gorm:"not null" json:"-"`
	Thumbnail2   thumbnail.Thumbnail `json:"thumbnail2"`
	LastActivity time.Time           `gorm:"not null" json:"last_activity"`
	HasEnded     bool                `gorm:"not null;default:false" json:"has_ended"`
}

type ResultRequest struct {
	WinnerID uint `json:"winner_id"`
}
