package models

// Post is append-only: created once, never updated or deleted.
type Post struct {
	BaseModel
	UserID  string `gorm:"not null;index"`
	Content string `gorm:"type:text"`

	// Relations
	Images   []PostImage `gorm:"foreignKey:PostID"`
	Likes    []Like      `gorm:"foreignKey:PostID"`
	Comments []Comment   `gorm:"foreignKey:PostID"`
}

// PostImage holds the recompressed image payload. A post may have zero,
// one or several images; no cardinality limit is enforced.
type PostImage struct {
	BaseModel
	PostID   string `gorm:"not null;index"`
	Data     []byte `gorm:"not null"`
	MimeType string `gorm:"type:varchar(50)"`
	Size     int64
}

// Like is existence-only. The composite unique index backs the atomic
// toggle: a concurrent duplicate insert fails instead of racing.
type Like struct {
	BaseModel
	PostID string `gorm:"not null;uniqueIndex:idx_likes_post_user"`
	UserID string `gorm:"not null;uniqueIndex:idx_likes_post_user"`
}

type Comment struct {
	BaseModel
	PostID  string `gorm:"not null;index"`
	UserID  string `gorm:"not null"`
	Content string `gorm:"type:text;not null"`
}
