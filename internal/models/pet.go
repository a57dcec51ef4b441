package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OwnerInfo identifies the person behind a pet listing or donation campaign.
type OwnerInfo struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Pet is a pet listed for adoption. Adopted and CreatedAt are server-set on
// creation; everything else comes from the owner.
type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Category         string             `bson:"category" json:"category"`
	Age              string             `bson:"age" json:"age"`
	Location         string             `bson:"location" json:"location"`
	Price            float64            `bson:"price,omitempty" json:"price,omitempty"`
	Photo            string             `bson:"photo" json:"photo"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	PetOwner         OwnerInfo          `bson:"petOwner" json:"petOwner"`
	Adopted          bool               `bson:"adopted" json:"adopted"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
