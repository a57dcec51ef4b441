package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawhope/pawhope-gobackend/internal/db"
	"github.com/pawhope/pawhope-gobackend/internal/models"
)

type AdoptionService struct {
	collection *mongo.Collection
}

func NewAdoptionService(database *mongo.Database) *AdoptionService {
	return &AdoptionService{collection: database.Collection(db.AdoptionRequestsCollection)}
}

func (s *AdoptionService) Create(ctx context.Context, req *models.AdoptionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req.ID = primitive.NewObjectID()
	req.CreatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to insert adoption request: %w", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListByOwner returns the requests addressed to a pet owner's email.
func (s *AdoptionService) ListByOwner(ctx context.Context, email string) ([]models.AdoptionRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.M{"petOwnerInfo": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adoption requests for %s: %w", email, err)
	}
	defer cur.Close(ctx)

	requests := []models.AdoptionRequest{}
	if err := cur.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("failed to decode adoption requests: %w", err)
	}

	return requests, nil
}

func (s *AdoptionService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete adoption request %s: %w", id, err)
	}

	return nil
}
