package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDonatedAmountUpdateIncrease(t *testing.T) {
	update := donatedAmountUpdate(50, "increase")

	assert.Equal(t, bson.M{"$inc": bson.M{"donatedAmount": float64(50)}}, update)
}

func TestDonatedAmountUpdateDecrease(t *testing.T) {
	update := donatedAmountUpdate(50, "decrease")

	assert.Equal(t, bson.M{"$inc": bson.M{"donatedAmount": float64(-50)}}, update)
}

func TestDonatedAmountUpdateUnknownStatusIncreases(t *testing.T) {
	update := donatedAmountUpdate(25, "")

	assert.Equal(t, bson.M{"$inc": bson.M{"donatedAmount": float64(25)}}, update)
}
