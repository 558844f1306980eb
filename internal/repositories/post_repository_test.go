package repositories

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "writer")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		createTestPost(t, db, author.ID, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	page1, total, err := repo.GetPosts(1)
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Len(t, page1, 10)

	page2, total, err := repo.GetPosts(2)
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Len(t, page2, 3)

	page3, total, err := repo.GetPosts(3)
	require.NoError(t, err)
	assert.Equal(t, int64(13), total)
	assert.Empty(t, page3)

	// Page 0 and negative pages clamp to the first page
	clamped, _, err := repo.GetPosts(0)
	require.NoError(t, err)
	assert.Equal(t, page1, clamped)
}

func TestPostPaginationHugePageIsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "writer")
	createTestPost(t, db, author.ID, "only post", time.Now())

	// A page number large enough to overflow the offset multiplication must
	// still behave like any other page past the end.
	posts, total, err := repo.GetPosts(math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, posts)
}

func TestPostOrderingNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "writer")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	createTestPost(t, db, author.ID, "oldest", base)
	createTestPost(t, db, author.ID, "middle", base.Add(time.Hour))
	newest := createTestPost(t, db, author.ID, "newest", base.Add(2*time.Hour))

	posts, _, err := repo.GetPosts(1)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, newest.ID, posts[0].ID)
	assert.Equal(t, "oldest", posts[2].Text)
}

func TestGetPostsByAuthorsFiltersExactly(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	followed := createTestUser(t, db, "followed")
	other := createTestUser(t, db, "other")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	// Interleave posts from a followed and an unfollowed author
	createTestPost(t, db, followed.ID, "f1", base)
	createTestPost(t, db, other.ID, "o1", base.Add(time.Minute))
	createTestPost(t, db, followed.ID, "f2", base.Add(2*time.Minute))
	createTestPost(t, db, other.ID, "o2", base.Add(3*time.Minute))

	posts, total, err := repo.GetPostsByAuthors([]uint{followed.ID}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.Equal(t, followed.ID, p.AuthorID)
	}
	assert.Equal(t, "f2", posts[0].Text)
}

func TestGetPostsByAuthorsEmptySet(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "writer")
	createTestPost(t, db, author.ID, "invisible", time.Now())

	posts, total, err := repo.GetPostsByAuthors(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.Equal(t, int64(0), total)
}

func TestGetPostsByGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "writer")

	group := createTestGroup(t, db, "cats")
	inGroup := createTestPost(t, db, author.ID, "in group", time.Now())
	inGroup.GroupID = &group.ID
	require.NoError(t, db.Save(inGroup).Error)
	createTestPost(t, db, author.ID, "no group", time.Now())

	posts, total, err := repo.GetPostsByGroup(group.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, posts, 1)
	assert.Equal(t, "in group", posts[0].Text)
}

func TestCountPostsByAuthor(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPostRepository(db)
	author := createTestUser(t, db, "writer")
	other := createTestUser(t, db, "other")

	createTestPost(t, db, author.ID, "one", time.Now())
	createTestPost(t, db, author.ID, "two", time.Now())
	createTestPost(t, db, other.ID, "theirs", time.Now())

	count, err := repo.CountPostsByAuthor(author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
