package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronin/postline/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MediaRepository defines the interface for image blob operations
type MediaRepository interface {
	SaveImage(ctx context.Context, image *models.Image) error
	GetImage(ctx context.Context, id string) (*models.Image, error)
	DeleteImage(ctx context.Context, id string) error
}

// MongoMediaRepository implements MediaRepository for MongoDB
type MongoMediaRepository struct {
	collection *mongo.Collection
}

// NewMongoMediaRepository creates a new MongoMediaRepository
func NewMongoMediaRepository(db *mongo.Database) *MongoMediaRepository {
	return &MongoMediaRepository{collection: db.Collection("images")}
}

// SaveImage stores an image document and fills in its generated ID
func (r *MongoMediaRepository) SaveImage(ctx context.Context, image *models.Image) error {
	image.ID = primitive.NewObjectID()
	image.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, image)
	return err
}

// GetImage retrieves an image by its hex object ID
func (r *MongoMediaRepository) GetImage(ctx context.Context, id string) (*models.Image, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid image ID format: %w", err)
	}

	var image models.Image
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("image not found")
		}
		return nil, err
	}
	return &image, nil
}

// DeleteImage deletes an image by its hex object ID
func (r *MongoMediaRepository) DeleteImage(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid image ID format: %w", err)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("image not found")
	}
	return nil
}
