package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawhope/pawhope-gobackend/internal/db"
	"github.com/pawhope/pawhope-gobackend/internal/models"
)

// petPageSize is the fixed page size for the public pet listing.
const petPageSize = 9

// PetListQuery carries the optional filters for the public pet listing.
type PetListQuery struct {
	Name     string
	Category string
	Sort     string // "asc" or "desc" on price; anything else leaves store order
	Page     int    // 1-based; 0 disables pagination
}

type PetService struct {
	collection *mongo.Collection
}

func NewPetService(database *mongo.Database) *PetService {
	return &PetService{collection: database.Collection(db.PetsCollection)}
}

// petListFilter builds the find filter for the public listing. Adopted pets
// are always excluded; name matching is a case-insensitive substring.
func petListFilter(q PetListQuery) bson.M {
	filter := bson.M{"adopted": false}
	if q.Name != "" {
		filter["name"] = bson.M{"$regex": regexp.QuoteMeta(q.Name), "$options": "i"}
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	return filter
}

func petListOptions(q PetListQuery) *options.FindOptions {
	opts := options.Find()
	switch q.Sort {
	case "asc":
		opts.SetSort(bson.M{"price": 1})
	case "desc":
		opts.SetSort(bson.M{"price": -1})
	}
	if q.Page > 0 {
		opts.SetSkip(int64(q.Page-1) * petPageSize).SetLimit(petPageSize)
	}
	return opts
}

func (s *PetService) List(ctx context.Context, q PetListQuery) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, petListFilter(q), petListOptions(q))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pets: %w", err)
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}

	return pets, nil
}

// ListAll returns every pet regardless of adoption state (admin view).
func (s *PetService) ListAll(ctx context.Context) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pets: %w", err)
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}

	return pets, nil
}

func (s *PetService) ListByOwner(ctx context.Context, email string) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.M{"petOwner.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pets for %s: %w", email, err)
	}
	defer cur.Close(ctx)

	pets := []models.Pet{}
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("failed to decode pets: %w", err)
	}

	return pets, nil
}

func (s *PetService) Get(ctx context.Context, id string) (*models.Pet, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pet models.Pet
	if err := s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&pet); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch pet %s: %w", id, err)
	}

	return &pet, nil
}

func (s *PetService) Create(ctx context.Context, pet *models.Pet) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pet.ID = primitive.NewObjectID()
	pet.Adopted = false
	pet.CreatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, pet)
	if err != nil {
		return "", fmt.Errorf("failed to insert pet: %w", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update replaces the owner-editable fields of a pet.
// TODO: enforce that the caller owns the pet before applying the update.
func (s *PetService) Update(ctx context.Context, id string, pet *models.Pet) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"photo":            pet.Photo,
		"name":             pet.Name,
		"age":              pet.Age,
		"price":            pet.Price,
		"category":         pet.Category,
		"location":         pet.Location,
		"shortDescription": pet.ShortDescription,
		"longDescription":  pet.LongDescription,
	}}

	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update pet %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *PetService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete pet %s: %w", id, err)
	}

	return nil
}

// SetAdopted flips the adoption flag to the caller-supplied value.
func (s *PetService) SetAdopted(ctx context.Context, id string, adopted bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"adopted": adopted}})
	if err != nil {
		return fmt.Errorf("failed to update adoption status for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
