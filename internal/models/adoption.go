package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Requester holds the contact details submitted with an adoption request.
type Requester struct {
	Email   string `bson:"email" json:"email"`
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}

// AdoptionRequest records a user's interest in adopting a specific pet,
// addressed to that pet's owner. Requests are created and deleted, never edited.
type AdoptionRequest struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PetID        string             `bson:"petId" json:"petId"`
	PetName      string             `bson:"petName" json:"petName"`
	PetImage     string             `bson:"petImage" json:"petImage"`
	PetOwnerInfo string             `bson:"petOwnerInfo" json:"petOwnerInfo"`
	Requester    Requester          `bson:"requester" json:"requester"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
