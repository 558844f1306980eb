package models

import "time"

// Post is a text entry by an author, optionally tagged to a group and
// optionally carrying an uploaded image.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text"`
	AuthorID  uint      `json:"author_id" gorm:"index"`
	GroupID   *uint     `json:"group_id,omitempty" gorm:"index"`
	ImageID   string    `json:"image_id,omitempty"` // media store object ID, empty when the post has no image
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Text    string `json:"text" validate:"required,min=1,max=10000"`
	GroupID *uint  `json:"group_id,omitempty"`
	ImageID string `json:"image_id,omitempty"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Text    string `json:"text,omitempty" validate:"omitempty,min=1,max=10000"`
	GroupID *uint  `json:"group_id,omitempty"`
	ImageID string `json:"image_id,omitempty"`
}
