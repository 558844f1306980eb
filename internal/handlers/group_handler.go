package handlers

import (
	"net/http"
	"strings"

	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// GroupHandler handles HTTP requests related to groups
type GroupHandler struct {
	groupRepository repositories.GroupRepository
	postRepository  repositories.PostRepository
	userRepository  repositories.UserRepository
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(groupRepo repositories.GroupRepository, postRepo repositories.PostRepository, userRepo repositories.UserRepository) *GroupHandler {
	return &GroupHandler{
		groupRepository: groupRepo,
		postRepository:  postRepo,
		userRepository:  userRepo,
	}
}

// RegisterGroupRoutes registers group-related routes
func (h *GroupHandler) RegisterGroupRoutes(public, protected *echo.Group) {
	public.GET("/groups", h.GetGroups)
	public.GET("/groups/:slug", h.GetGroupPosts)
	protected.POST("/groups", h.CreateGroup)
}

// GetGroups lists all groups
func (h *GroupHandler) GetGroups(c echo.Context) error {
	groups, err := h.groupRepository.GetGroups()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"groups": groups}})
}

// GetGroupPosts returns a group and one page of its posts
func (h *GroupHandler) GetGroupPosts(c echo.Context) error {
	slug := c.Param("slug")

	group, err := h.groupRepository.GetGroupBySlug(slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Group not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	page := pageParam(c)
	posts, total, err := h.postRepository.GetPostsByGroup(group.ID, page)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"group": group,
			"posts": enrichPosts(posts, h.userRepository),
		},
		"meta": paginationMeta(page, total, repositories.PostsPerPage),
	})
}

// CreateGroup creates a new group. The slug is normalized to lowercase and
// must be unique.
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if _, err := h.groupRepository.GetGroupBySlug(slug); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "Group slug already in use")
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
	}

	if err := h.groupRepository.CreateGroup(group); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, group)
}
