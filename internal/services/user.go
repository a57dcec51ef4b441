package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pawhope/pawhope-gobackend/internal/db"
	"github.com/pawhope/pawhope-gobackend/internal/models"
)

type UserService struct {
	collection *mongo.Collection
}

func NewUserService(database *mongo.Database) *UserService {
	return &UserService{collection: database.Collection(db.UsersCollection)}
}

// UpsertByEmail stores the user on first sign-in and is a plain read on every
// later call. The unique email index backs this up against concurrent inserts.
func (s *UserService) UpsertByEmail(ctx context.Context, email string, user *models.User) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var existing models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	user.ID = primitive.NewObjectID()
	user.Email = email
	user.Role = models.RoleUser
	user.CreatedAt = time.Now()

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race to a concurrent first sign-in; read the winner.
			if err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing); err == nil {
				return &existing, nil
			}
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	logrus.WithField("email", email).Info("registered new user")
	return user, nil
}

// GetRole returns the stored role for an email. Satisfies middleware.RoleLookup.
func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email},
		options.FindOne().SetProjection(bson.M{"role": 1})).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch role: %w", err)
	}

	return user.Role, nil
}

func (s *UserService) UserList(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	return users, nil
}

// PromoteToAdmin sets a user's role to admin.
func (s *UserService) PromoteToAdmin(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.collection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	logrus.WithField("email", email).Info("promoted user to admin")
	return nil
}
