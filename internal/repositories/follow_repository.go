package repositories

import (
	"errors"

	"github.com/avoronin/postline/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations.
// Follow and Unfollow are both idempotent; duplicate edges are additionally
// ruled out by the unique (user_id, author_id) index.
type FollowRepository interface {
	Follow(userID, authorID uint) (bool, error)
	Unfollow(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	GetFollowingIDs(userID uint) ([]uint, error)
	GetFollowersCount(authorID uint) (int64, error)
	GetFollowingCount(userID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Follow creates the edge if it does not exist yet. It reports whether a new
// edge was created, so callers can skip notifications on repeat follows.
func (r *PostgresFollowRepository) Follow(userID, authorID uint) (bool, error) {
	var existing models.Follow
	err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	follow := &models.Follow{UserID: userID, AuthorID: authorID}
	if err := r.db.Create(follow).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Unfollow deletes the edge; removing an absent edge is a no-op
func (r *PostgresFollowRepository) Unfollow(userID, authorID uint) error {
	return r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&models.Follow{}).Error
}

// IsFollowing reports whether the user follows the author
func (r *PostgresFollowRepository) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", userID, authorID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowingIDs returns the IDs of every author the user follows
func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).Pluck("author_id", &ids).Error
	return ids, err
}

// GetFollowersCount counts the users following an author
func (r *PostgresFollowRepository) GetFollowersCount(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// GetFollowingCount counts the authors a user follows
func (r *PostgresFollowRepository) GetFollowingCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
