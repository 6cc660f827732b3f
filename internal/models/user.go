package models

// User is created at signup and never updated or deleted by any
// endpoint. PasswordHash holds a bcrypt hash, never the raw password.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	Gender       string
	Age          int
	SkinType     string `gorm:"type:varchar(30);index"`

	// Relations
	Posts          []Post              `gorm:"foreignKey:UserID"`
	ProfilePicture *ProfilePicture     `gorm:"foreignKey:UserID"`
	AnalysisScores []SkinAnalysisScore `gorm:"foreignKey:UserID"`
}

// ProfilePicture stores the user's avatar as a blob. The feed takes the
// first row per user; uploads replace rather than accumulate.
type ProfilePicture struct {
	BaseModel
	UserID   string `gorm:"not null;index"`
	Data     []byte `gorm:"not null"`
	MimeType string `gorm:"type:varchar(50)"`
	Size     int64
}
