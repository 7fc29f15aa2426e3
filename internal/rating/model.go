package rating

// Rating holds one user's points for one thumbnail. A missing row means the
// user never compared the thumbnail; it is created lazily on the first
// comparison, seeded with the configured base points.
type Rating struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;uniqueIndex:idx_rating_user_thumbnail" json:"user_id"`
	ThumbnailID uint    `gorm:"not null;uniqueIndex:idx_rating_user_thumbnail" json:"thumbnail_id"`
	Points      float64 `gorm:"not null" json:"points"`
}
