package models

import "time"

// Follow is a directed edge from a follower to an author: the follower's
// feed includes the author's posts. The composite unique index keeps the
// edge set duplicate-free at the storage layer.
type Follow struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_author"`
	AuthorID  uint      `json:"author_id" gorm:"index;uniqueIndex:idx_user_author"`
	CreatedAt time.Time `json:"created_at"`
}
