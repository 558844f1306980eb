package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommentHandlerForTest(env *testEnv) *CommentHandler {
	return NewCommentHandler(env.comments, env.posts, env.users, env.notifications)
}

func TestCreateCommentOnUnknownPost(t *testing.T) {
	env := newTestEnv(t)
	handler := newCommentHandlerForTest(env)
	commenter := env.createUser(t, "commenter")

	body := strings.NewReader(`{"text":"into the void"}`)
	c, _ := env.newContext(http.MethodPost, "/api/v1/posts/9999/comments", body, commenter)
	c.SetParamNames("post_id")
	c.SetParamValues("9999")

	err := handler.CreateComment(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpErrorCode(t, err))
}

func TestCreateCommentNotifiesPostAuthor(t *testing.T) {
	env := newTestEnv(t)
	handler := newCommentHandlerForTest(env)
	author := env.createUser(t, "author")
	commenter := env.createUser(t, "commenter")
	post := env.createPost(t, author, "a post", time.Now())

	body := strings.NewReader(`{"text":"well said"}`)
	c, rec := env.newContext(http.MethodPost, "/api/v1/posts/"+strconv.Itoa(int(post.ID))+"/comments", body, commenter)
	c.SetParamNames("post_id")
	c.SetParamValues(strconv.Itoa(int(post.ID)))

	require.NoError(t, handler.CreateComment(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	count, err := env.notifications.GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCommentOnOwnPostDoesNotNotify(t *testing.T) {
	env := newTestEnv(t)
	handler := newCommentHandlerForTest(env)
	author := env.createUser(t, "author")
	post := env.createPost(t, author, "a post", time.Now())

	body := strings.NewReader(`{"text":"replying to myself"}`)
	c, _ := env.newContext(http.MethodPost, "/api/v1/posts/"+strconv.Itoa(int(post.ID))+"/comments", body, author)
	c.SetParamNames("post_id")
	c.SetParamValues(strconv.Itoa(int(post.ID)))

	require.NoError(t, handler.CreateComment(c))

	count, err := env.notifications.GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestCreateCommentRejectsEmptyText(t *testing.T) {
	env := newTestEnv(t)
	handler := newCommentHandlerForTest(env)
	author := env.createUser(t, "author")
	post := env.createPost(t, author, "a post", time.Now())

	body := strings.NewReader(`{"text":""}`)
	c, _ := env.newContext(http.MethodPost, "/api/v1/posts/"+strconv.Itoa(int(post.ID))+"/comments", body, author)
	c.SetParamNames("post_id")
	c.SetParamValues(strconv.Itoa(int(post.ID)))

	err := handler.CreateComment(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpErrorCode(t, err))
}
