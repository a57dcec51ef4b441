package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign statuses. CampaignStatusActive is the only state that accepts
// donations; anything else is treated as paused.
const (
	CampaignStatusActive = "Active"
	CampaignStatusPaused = "Paused"
)

// DonationCampaign is a fundraising request tied to a specific pet.
// DonatedAmount is a running total maintained by explicit adjustment calls,
// not derived from the donations collection.
type DonationCampaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AskerInfo        OwnerInfo          `bson:"askerInfo" json:"askerInfo"`
	PetName          string             `bson:"petName" json:"petName"`
	PetImage         string             `bson:"petImage" json:"petImage"`
	MaxAmount        float64            `bson:"maxAmount" json:"maxAmount"`
	DonatedAmount    float64            `bson:"donatedAmount" json:"donatedAmount"`
	Status           string             `bson:"status" json:"status"`
	LastDate         string             `bson:"lastDate" json:"lastDate"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
