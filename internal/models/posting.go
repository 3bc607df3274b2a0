package models

// JobPosting is a vacancy published by internal management
type JobPosting struct {
	BaseModel
	PostedBy     string `gorm:"size:36;index" json:"postedBy"`
	Title        string `gorm:"size:100;not null" json:"title"`
	Description  string `gorm:"type:text;not null" json:"description"`
	Requirements string `gorm:"type:text;not null" json:"requirements"`
	PictureURL   string `gorm:"size:255" json:"pictureUrl,omitempty"`

	Poster User `gorm:"foreignKey:PostedBy" json:"-"`
}

// CommunityPost is an article published to the community feed
type CommunityPost struct {
	BaseModel
	PostedBy   string `gorm:"size:36;index" json:"postedBy"`
	Title      string `gorm:"size:255" json:"title"`
	Category   string `gorm:"size:255;index" json:"category,omitempty"`
	Content    string `gorm:"type:text" json:"content"`
	PictureURL string `gorm:"size:255" json:"pictureUrl,omitempty"`

	Author User `gorm:"foreignKey:PostedBy" json:"-"`
}
