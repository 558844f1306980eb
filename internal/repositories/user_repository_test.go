package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetUserByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)
	created := createTestUser(t, db, "boba")

	user, err := repo.GetUserByUsername("boba")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = repo.GetUserByUsername("nobody")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchUsersCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)
	createTestUser(t, db, "Boba")
	createTestUser(t, db, "biba")
	createTestUser(t, db, "unrelated")

	users, err := repo.SearchUsers("b")
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGroupLookupBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresGroupRepository(db)
	createTestGroup(t, db, "cats")

	group, err := repo.GetGroupBySlug("cats")
	require.NoError(t, err)
	assert.Equal(t, "cats", group.Slug)

	_, err = repo.GetGroupBySlug("dogs")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
