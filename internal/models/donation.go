package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation records a single contribution against a campaign. PetName and
// PetImage are denormalized from the campaign for display.
type Donation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampaignID     string             `bson:"campaignId" json:"campaignId"`
	DonationAmount float64            `bson:"donationAmount" json:"donationAmount"`
	Donator        OwnerInfo          `bson:"donator" json:"donator"`
	PetName        string             `bson:"petName" json:"petName"`
	PetImage       string             `bson:"petImage" json:"petImage"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
