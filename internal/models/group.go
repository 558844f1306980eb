package models

import "time"

// Group is a named category posts may belong to. The slug is the public
// identifier and never changes after creation.
type Group struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;size:100"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateGroupRequest defines the request body for creating a new group
type CreateGroupRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Slug        string `json:"slug" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
}
