package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avoronin/postline/backend/internal/middleware"
	"github.com/avoronin/postline/backend/internal/models"
	"github.com/avoronin/postline/backend/internal/repositories"
	"github.com/avoronin/postline/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv bundles an Echo instance and repositories over a fresh in-memory
// database for handler tests.
type testEnv struct {
	e             *echo.Echo
	db            *gorm.DB
	users         repositories.UserRepository
	groups        repositories.GroupRepository
	posts         repositories.PostRepository
	comments      repositories.CommentRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
	media         *memMediaRepository
}

// memMediaRepository is a map-backed image store standing in for MongoDB
type memMediaRepository struct {
	images map[string]*models.Image
}

func newMemMediaRepository() *memMediaRepository {
	return &memMediaRepository{images: make(map[string]*models.Image)}
}

func (r *memMediaRepository) SaveImage(_ context.Context, image *models.Image) error {
	image.ID = primitive.NewObjectID()
	image.CreatedAt = time.Now()
	r.images[image.ID.Hex()] = image
	return nil
}

func (r *memMediaRepository) GetImage(_ context.Context, id string) (*models.Image, error) {
	image, ok := r.images[id]
	if !ok {
		return nil, fmt.Errorf("image not found")
	}
	return image, nil
}

func (r *memMediaRepository) DeleteImage(_ context.Context, id string) error {
	if _, ok := r.images[id]; !ok {
		return fmt.Errorf("image not found")
	}
	delete(r.images, id)
	return nil
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
		&models.Notification{},
	))

	e := echo.New()
	e.Validator = validators.NewValidator()

	return &testEnv{
		e:             e,
		db:            db,
		users:         repositories.NewPostgresUserRepository(db),
		groups:        repositories.NewPostgresGroupRepository(db),
		posts:         repositories.NewPostgresPostRepository(db),
		comments:      repositories.NewPostgresCommentRepository(db),
		follows:       repositories.NewPostgresFollowRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
		media:         newMemMediaRepository(),
	}
}

func (env *testEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createPost(t *testing.T, author *models.User, text string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{Text: text, AuthorID: author.ID, CreatedAt: createdAt}
	require.NoError(t, env.db.Create(post).Error)
	return post
}

// newContext builds an echo context for a direct handler call. A non-nil
// user plays the role of the JWT middleware having authenticated the request.
func (env *testEnv) newContext(method, target string, body io.Reader, user *models.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.ContextUserKey, &models.JwtCustomClaims{UserID: user.ID, Username: user.Username})
	}
	return c, rec
}

// httpErrorCode unwraps the status code of an *echo.HTTPError
func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return httpErr.Code
}
