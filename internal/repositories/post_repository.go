package repositories

import (
	"github.com/avoronin/postline/backend/internal/models"
	"gorm.io/gorm"
)

// PostsPerPage is the fixed page size for every paginated post listing.
const PostsPerPage = 10

// PostRepository defines the interface for post data operations. Listing
// methods are 1-based paginated and return the total row count alongside
// the page so handlers can build pagination metadata.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	GetPosts(page int) ([]models.Post, int64, error)
	GetPostsByGroup(groupID uint, page int) ([]models.Post, int64, error)
	GetPostsByAuthor(authorID uint, page int) ([]models.Post, int64, error)
	GetPostsByAuthors(authorIDs []uint, page int) ([]models.Post, int64, error)
	CountPostsByAuthor(authorID uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates an existing post in PostgreSQL
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Save(post).Error
}

// GetPosts retrieves one page of the site-wide post listing
func (r *PostgresPostRepository) GetPosts(page int) ([]models.Post, int64, error) {
	return r.paginate(r.db.Model(&models.Post{}), page)
}

// GetPostsByGroup retrieves one page of posts belonging to a group
func (r *PostgresPostRepository) GetPostsByGroup(groupID uint, page int) ([]models.Post, int64, error) {
	return r.paginate(r.db.Model(&models.Post{}).Where("group_id = ?", groupID), page)
}

// GetPostsByAuthor retrieves one page of posts written by a single author
func (r *PostgresPostRepository) GetPostsByAuthor(authorID uint, page int) ([]models.Post, int64, error) {
	return r.paginate(r.db.Model(&models.Post{}).Where("author_id = ?", authorID), page)
}

// GetPostsByAuthors retrieves one page of posts written by any of the given
// authors. An empty author set yields an empty page, not an error.
func (r *PostgresPostRepository) GetPostsByAuthors(authorIDs []uint, page int) ([]models.Post, int64, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, 0, nil
	}
	return r.paginate(r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs), page)
}

// CountPostsByAuthor counts all posts written by an author
func (r *PostgresPostRepository) CountPostsByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// paginate applies the fixed page size to a filtered query, newest first.
// The id tiebreak keeps the order stable for posts sharing a timestamp.
func (r *PostgresPostRepository) paginate(query *gorm.DB, page int) ([]models.Post, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// A page past the end is an empty page. Comparing against the page count
	// before computing the offset also keeps the multiplication from wrapping
	// negative on absurd page numbers.
	totalPages := (total + PostsPerPage - 1) / PostsPerPage
	if int64(page-1) >= totalPages {
		return []models.Post{}, total, nil
	}

	var posts []models.Post
	err := query.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Offset((page - 1) * PostsPerPage).
		Limit(PostsPerPage).
		Find(&posts).Error
	return posts, total, err
}
