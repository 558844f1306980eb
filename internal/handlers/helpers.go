package handlers

import (
	"math"
	"strconv"

	"github.com/avoronin/postline/backend/internal/middleware"
	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// getUserIDFromContext returns the authenticated user's ID, or 0 when the
// request is anonymous.
func getUserIDFromContext(c echo.Context) uint {
	claims, ok := c.Get(middleware.ContextUserKey).(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0
	}
	return claims.UserID
}

// pageParam reads the 1-based ?page= query parameter, defaulting to 1.
func pageParam(c echo.Context) int {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// paginationMeta builds the standard pagination envelope
func paginationMeta(page int, totalItems int64, itemsPerPage int) echo.Map {
	totalPages := int(math.Ceil(float64(totalItems) / float64(itemsPerPage)))
	return echo.Map{
		"currentPage":     page,
		"totalPages":      totalPages,
		"totalItems":      totalItems,
		"itemsPerPage":    itemsPerPage,
		"hasNextPage":     page < totalPages,
		"hasPreviousPage": page > 1,
	}
}

// EnrichedPost is a post with its author attached
type EnrichedPost struct {
	models.Post
	Author models.UserCompact `json:"author"`
}

// enrichPosts resolves post authors once per distinct author and attaches
// them to the page of posts.
func enrichPosts(posts []models.Post, userRepo repositories.UserRepository) []EnrichedPost {
	userMap := make(map[uint]models.UserCompact)
	for _, p := range posts {
		if _, ok := userMap[p.AuthorID]; ok {
			continue
		}
		if user, err := userRepo.GetUserByID(p.AuthorID); err == nil {
			userMap[p.AuthorID] = user.ToCompact()
		}
	}

	enriched := make([]EnrichedPost, len(posts))
	for i, p := range posts {
		enriched[i] = EnrichedPost{Post: p, Author: userMap[p.AuthorID]}
	}
	return enriched
}
