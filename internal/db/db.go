package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used across the service.
const (
	UsersCollection             = "users"
	PetsCollection              = "pets"
	AdoptionRequestsCollection  = "adoption-requests"
	DonationCampaignsCollection = "donation-campaigns"
	DonationsCollection         = "donations"
)

// Connect opens a MongoDB connection and verifies it with a ping.
// The returned client is passed down explicitly; there is no package-level state.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// EnsureIndexes creates the indexes the query paths rely on.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.M{"email": 1}, Options: options.Index().SetUnique(true)},
		},
		PetsCollection: {
			{Keys: bson.D{{Key: "adopted", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.M{"petOwner.email": 1}},
		},
		DonationCampaignsCollection: {
			{Keys: bson.M{"created_at": -1}},
			{Keys: bson.M{"askerInfo.email": 1}},
		},
		DonationsCollection: {
			{Keys: bson.M{"campaignId": 1}},
			{Keys: bson.M{"donator.email": 1}},
		},
		AdoptionRequestsCollection: {
			{Keys: bson.M{"petOwnerInfo": 1}},
		},
	}

	for name, models := range indexes {
		if _, err := database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
