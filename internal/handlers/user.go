package handlers

import (
	"net/http"

	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	followRepository repositories.FollowRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository, followRepo repositories.FollowRepository) *UserHandler {
	return &UserHandler{
		userRepository:   userRepo,
		postRepository:   postRepo,
		followRepository: followRepo,
	}
}

// RegisterUserRoutes registers user profile-related routes
func (h *UserHandler) RegisterUserRoutes(public, protected *echo.Group) {
	public.GET("/users/:username", h.GetProfile)
	protected.GET("/users/search", h.SearchUsers)
}

// GetProfile returns a user's public profile: the user, one page of their
// posts, follower/following counts and — for authenticated viewers — whether
// the viewer already follows them.
func (h *UserHandler) GetProfile(c echo.Context) error {
	username := c.Param("username")

	author, err := h.userRepository.GetUserByUsername(username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pageParam(c)
	posts, total, err := h.postRepository.GetPostsByAuthor(author.ID, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	followersCount, err := h.followRepository.GetFollowersCount(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	followingCount, err := h.followRepository.GetFollowingCount(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// false for anonymous viewers
	following := false
	if currentUserID := getUserIDFromContext(c); currentUserID != 0 {
		following, err = h.followRepository.IsFollowing(currentUserID, author.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"user":            author,
			"posts":           enrichPosts(posts, h.userRepository),
			"posts_count":     total,
			"followers_count": followersCount,
			"following_count": followingCount,
			"following":       following,
		},
		"meta": paginationMeta(page, total, repositories.PostsPerPage),
	})
}

// SearchUsers searches for users by a query string (username or email)
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.userRepository.SearchUsers(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, users)
}
