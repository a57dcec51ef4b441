package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pawhope/pawhope-gobackend/internal/db"
)

// OverviewStats summarizes a user's footprint across the collections.
type OverviewStats struct {
	TotalPets           int64   `json:"totalPets"`
	MyDonationCampaigns int64   `json:"myDonationCampaigns"`
	MyAdoptionRequests  int64   `json:"myAdoptionRequests"`
	TotalDonations      float64 `json:"totalDonations"`
}

type StatsService struct {
	db *mongo.Database
}

func NewStatsService(database *mongo.Database) *StatsService {
	return &StatsService{db: database}
}

// Overview counts a user's pets, campaigns and incoming adoption requests and
// sums their donations. The sum is 0 when the user has never donated.
func (s *StatsService) Overview(ctx context.Context, email string) (*OverviewStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats := &OverviewStats{}
	var err error

	stats.TotalPets, err = s.db.Collection(db.PetsCollection).
		CountDocuments(ctx, bson.M{"petOwner.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to count pets: %w", err)
	}

	stats.MyDonationCampaigns, err = s.db.Collection(db.DonationCampaignsCollection).
		CountDocuments(ctx, bson.M{"askerInfo.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to count campaigns: %w", err)
	}

	stats.MyAdoptionRequests, err = s.db.Collection(db.AdoptionRequestsCollection).
		CountDocuments(ctx, bson.M{"petOwnerInfo": email})
	if err != nil {
		return nil, fmt.Errorf("failed to count adoption requests: %w", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"donator.email": email}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$donationAmount"},
		}}},
	}

	cur, err := s.db.Collection(db.DonationsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate donations: %w", err)
	}
	defer cur.Close(ctx)

	var totals []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("failed to decode donation total: %w", err)
	}
	if len(totals) > 0 {
		stats.TotalDonations = totals[0].Total
	}

	return stats, nil
}
