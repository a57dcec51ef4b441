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

// campaignPageSize is the fixed page size for the public campaign listing.
const campaignPageSize = 6

// activeSampleSize caps the home-page sample of active campaigns.
const activeSampleSize = 3

// CampaignService covers donation campaigns and the donations made against
// them; the two collections are always used together.
type CampaignService struct {
	campaigns *mongo.Collection
	donations *mongo.Collection
}

func NewCampaignService(database *mongo.Database) *CampaignService {
	return &CampaignService{
		campaigns: database.Collection(db.DonationCampaignsCollection),
		donations: database.Collection(db.DonationsCollection),
	}
}

// List returns campaigns newest first, optionally paginated.
func (s *CampaignService) List(ctx context.Context, page int) ([]models.DonationCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if page > 0 {
		opts.SetSkip(int64(page-1) * campaignPageSize).SetLimit(campaignPageSize)
	}

	cur, err := s.campaigns.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns: %w", err)
	}
	defer cur.Close(ctx)

	campaigns := []models.DonationCampaign{}
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	return campaigns, nil
}

// ListAll returns every campaign (admin view).
func (s *CampaignService) ListAll(ctx context.Context) ([]models.DonationCampaign, error) {
	return s.List(ctx, 0)
}

func (s *CampaignService) Get(ctx context.Context, id string) (*models.DonationCampaign, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var campaign models.DonationCampaign
	if err := s.campaigns.FindOne(ctx, bson.M{"_id": objID}).Decode(&campaign); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch campaign %s: %w", id, err)
	}

	return &campaign, nil
}

func (s *CampaignService) Create(ctx context.Context, campaign *models.DonationCampaign) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	campaign.ID = primitive.NewObjectID()
	campaign.Status = models.CampaignStatusActive
	campaign.DonatedAmount = 0
	campaign.CreatedAt = time.Now()

	result, err := s.campaigns.InsertOne(ctx, campaign)
	if err != nil {
		return "", fmt.Errorf("failed to insert campaign: %w", err)
	}

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// Update replaces the seeker-editable fields of a campaign.
func (s *CampaignService) Update(ctx context.Context, id string, campaign *models.DonationCampaign) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"petName":          campaign.PetName,
		"petImage":         campaign.PetImage,
		"maxAmount":        campaign.MaxAmount,
		"lastDate":         campaign.LastDate,
		"shortDescription": campaign.ShortDescription,
		"longDescription":  campaign.LongDescription,
	}}

	result, err := s.campaigns.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to update campaign %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// SetStatus stores the caller-supplied status verbatim.
func (s *CampaignService) SetStatus(ctx context.Context, id, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.campaigns.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update campaign status %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.campaigns.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete campaign %s: %w", id, err)
	}

	return nil
}

// ActiveSample returns up to three active campaigns for the home page.
func (s *CampaignService) ActiveSample(ctx context.Context) ([]models.DonationCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.campaigns.Find(ctx,
		bson.M{"status": models.CampaignStatusActive},
		options.Find().SetLimit(activeSampleSize))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active campaigns: %w", err)
	}
	defer cur.Close(ctx)

	campaigns := []models.DonationCampaign{}
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	return campaigns, nil
}

// ListByAsker returns the campaigns a seeker created.
func (s *CampaignService) ListByAsker(ctx context.Context, email string) ([]models.DonationCampaign, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.campaigns.Find(ctx, bson.M{"askerInfo.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch campaigns for %s: %w", email, err)
	}
	defer cur.Close(ctx)

	campaigns := []models.DonationCampaign{}
	if err := cur.All(ctx, &campaigns); err != nil {
		return nil, fmt.Errorf("failed to decode campaigns: %w", err)
	}

	return campaigns, nil
}

// CreateDonation checks the referenced campaign and records the donation.
// It never touches the campaign's running total; the client follows up with
// AdjustDonatedAmount. The check-then-insert pair is not atomic, so a
// donation can slip through right after a pause.
func (s *CampaignService) CreateDonation(ctx context.Context, donation *models.Donation) (string, error) {
	campaign, err := s.Get(ctx, donation.CampaignID)
	if err != nil {
		return "", err
	}
	if campaign.Status != models.CampaignStatusActive {
		return "", ErrCampaignPaused
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	donation.ID = primitive.NewObjectID()
	donation.CreatedAt = time.Now()

	result, err := s.donations.InsertOne(ctx, donation)
	if err != nil {
		return "", fmt.Errorf("failed to insert donation: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"campaign": donation.CampaignID,
		"amount":   donation.DonationAmount,
	}).Info("recorded donation")

	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

// ListDonations returns the donations recorded against a campaign.
func (s *CampaignService) ListDonations(ctx context.Context, campaignID string) ([]models.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.donations.Find(ctx, bson.M{"campaignId": campaignID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations for campaign %s: %w", campaignID, err)
	}
	defer cur.Close(ctx)

	donations := []models.Donation{}
	if err := cur.All(ctx, &donations); err != nil {
		return nil, fmt.Errorf("failed to decode donations: %w", err)
	}

	return donations, nil
}

// DeleteDonation removes a donation (refund). The campaign's donatedAmount is
// not reversed here; the client issues a separate decrease adjustment.
func (s *CampaignService) DeleteDonation(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.donations.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete donation %s: %w", id, err)
	}

	return nil
}

// donatedAmountUpdate builds the atomic increment applied to a campaign's
// running total. Any status other than "decrease" adds the amount.
func donatedAmountUpdate(amount float64, status string) bson.M {
	if status == "decrease" {
		amount = -amount
	}
	return bson.M{"$inc": bson.M{"donatedAmount": amount}}
}

// AdjustDonatedAmount applies a signed delta to a campaign's running total
// using the store's atomic $inc.
func (s *CampaignService) AdjustDonatedAmount(ctx context.Context, id string, amount float64, status string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := s.campaigns.UpdateOne(ctx, bson.M{"_id": objID}, donatedAmountUpdate(amount, status))
	if err != nil {
		return fmt.Errorf("failed to adjust donated amount for %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// ListDonationsByDonator returns a user's own donations.
func (s *CampaignService) ListDonationsByDonator(ctx context.Context, email string) ([]models.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cur, err := s.donations.Find(ctx, bson.M{"donator.email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch donations for %s: %w", email, err)
	}
	defer cur.Close(ctx)

	donations := []models.Donation{}
	if err := cur.All(ctx, &donations); err != nil {
		return nil, fmt.Errorf("failed to decode donations: %w", err)
	}

	return donations, nil
}
