package thumbnail

type Thumbnail struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	YoutubeVideoID string `gorm:"uniqueIndex;not null" json:"youtube_video_id"`
	URL            string `gorm:"not null" json:"url"`
	AddedByID      uint   `gorm:"not null" json:"added_by"`
}

type ThumbnailRequest struct {
	YoutubeVideoID string `json:"youtube_video_id"`
}
