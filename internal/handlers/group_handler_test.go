package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/avoronin/postline/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGroupPostsUnknownSlug(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGroupHandler(env.groups, env.posts, env.users)

	c, _ := env.newContext(http.MethodGet, "/api/v1/groups/ghosts", nil, nil)
	c.SetParamNames("slug")
	c.SetParamValues("ghosts")

	err := handler.GetGroupPosts(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpErrorCode(t, err))
}

func TestGetGroupPostsFiltersByGroup(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGroupHandler(env.groups, env.posts, env.users)
	author := env.createUser(t, "writer")

	group := &models.Group{Title: "Cats", Slug: "cats"}
	require.NoError(t, env.db.Create(group).Error)

	tagged := env.createPost(t, author, "a cat post", time.Now())
	tagged.GroupID = &group.ID
	require.NoError(t, env.db.Save(tagged).Error)
	env.createPost(t, author, "an untagged post", time.Now())

	c, rec := env.newContext(http.MethodGet, "/api/v1/groups/cats", nil, nil)
	c.SetParamNames("slug")
	c.SetParamValues("cats")

	require.NoError(t, handler.GetGroupPosts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "a cat post")
	assert.NotContains(t, rec.Body.String(), "an untagged post")
}

func TestCreateGroupDuplicateSlug(t *testing.T) {
	env := newTestEnv(t)
	handler := NewGroupHandler(env.groups, env.posts, env.users)
	creator := env.createUser(t, "creator")

	body := strings.NewReader(`{"title":"Cats","slug":"cats"}`)
	c, rec := env.newContext(http.MethodPost, "/api/v1/groups", body, creator)
	require.NoError(t, handler.CreateGroup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body = strings.NewReader(`{"title":"More Cats","slug":"CATS"}`)
	c, _ = env.newContext(http.MethodPost, "/api/v1/groups", body, creator)
	err := handler.CreateGroup(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpErrorCode(t, err))
}
