package handlers

import (
	"net/http"
	"strconv"

	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/internal/monitoring"
	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	userRepository    repositories.UserRepository
	groupRepository   repositories.GroupRepository
	commentRepository repositories.CommentRepository
	mediaRepository   repositories.MediaRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	groupRepo repositories.GroupRepository,
	commentRepo repositories.CommentRepository,
	mediaRepo repositories.MediaRepository,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		userRepository:    userRepo,
		groupRepository:   groupRepo,
		commentRepository: commentRepo,
		mediaRepository:   mediaRepo,
	}
}

// RegisterPostRoutes registers post-related routes. Reads are public, writes
// require authentication.
func (h *PostHandler) RegisterPostRoutes(public, protected *echo.Group) {
	public.GET("/posts", h.GetPosts)
	public.GET("/posts/:id", h.GetPost)
	protected.POST("/posts", h.CreatePost)
	protected.PUT("/posts/:id", h.UpdatePost)
}

// GetPosts returns the site-wide post listing, newest first, one page at a time
func (h *PostHandler) GetPosts(c echo.Context) error {
	page := pageParam(c)

	posts, total, err := h.postRepository.GetPosts(page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"posts": enrichPosts(posts, h.userRepository)},
		"meta":    paginationMeta(page, total, repositories.PostsPerPage),
	})
}

// GetPost returns a single post with its comments and the author's post count
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	authorPostsCount, err := h.postRepository.CountPostsByAuthor(post.AuthorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	enriched := enrichPosts([]models.Post{*post}, h.userRepository)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"post":               enriched[0],
			"comments":           comments,
			"author_posts_count": authorPostsCount,
		},
	})
}

// CreatePost creates a new post authored by the current user
func (h *PostHandler) CreatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.GroupID != nil {
		if _, err := h.groupRepository.GetGroupByID(*req.GroupID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown group")
		}
	}

	post := &models.Post{
		Text:     req.Text,
		AuthorID: currentUserID,
		GroupID:  req.GroupID,
		ImageID:  req.ImageID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	monitoring.PostsCreated.Inc()

	return c.JSON(http.StatusCreated, post)
}

// UpdatePost updates an existing post. Only the author may edit; anyone else
// gets 403 and the post stays untouched.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid post ID")
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	existingPost, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if existingPost.AuthorID != currentUserID {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	if req.Text != "" {
		existingPost.Text = req.Text
	}
	if req.GroupID != nil {
		if _, err := h.groupRepository.GetGroupByID(*req.GroupID); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown group")
		}
		existingPost.GroupID = req.GroupID
	}
	if req.ImageID != "" {
		// Replacing the image orphans the old blob; drop it. A failed delete
		// only leaves a stale blob behind, so the edit still proceeds.
		if h.mediaRepository != nil && existingPost.ImageID != "" && existingPost.ImageID != req.ImageID {
			if err := h.mediaRepository.DeleteImage(c.Request().Context(), existingPost.ImageID); err != nil {
				c.Logger().Warnf("failed to delete replaced image %s: %v", existingPost.ImageID, err)
			}
		}
		existingPost.ImageID = req.ImageID
	}

	if err := h.postRepository.UpdatePost(existingPost); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, existingPost)
}
