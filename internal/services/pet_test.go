package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPetListFilterDefaults(t *testing.T) {
	filter := petListFilter(PetListQuery{})

	assert.Equal(t, bson.M{"adopted": false}, filter)
}

func TestPetListFilterNameIsCaseInsensitiveSubstring(t *testing.T) {
	filter := petListFilter(PetListQuery{Name: "bud"})

	name, ok := filter["name"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "bud", name["$regex"])
	assert.Equal(t, "i", name["$options"])
	assert.Equal(t, false, filter["adopted"])
}

func TestPetListFilterEscapesRegexMeta(t *testing.T) {
	filter := petListFilter(PetListQuery{Name: "a.c"})

	name := filter["name"].(bson.M)
	assert.Equal(t, `a\.c`, name["$regex"])
}

func TestPetListFilterCategory(t *testing.T) {
	filter := petListFilter(PetListQuery{Category: "cat"})

	assert.Equal(t, "cat", filter["category"])
}

func TestPetListOptionsSort(t *testing.T) {
	asc := petListOptions(PetListQuery{Sort: "asc"})
	require.NotNil(t, asc.Sort)
	assert.Equal(t, bson.M{"price": 1}, asc.Sort)

	desc := petListOptions(PetListQuery{Sort: "desc"})
	assert.Equal(t, bson.M{"price": -1}, desc.Sort)

	none := petListOptions(PetListQuery{Sort: "sideways"})
	assert.Nil(t, none.Sort)
}

func TestPetListOptionsPagination(t *testing.T) {
	opts := petListOptions(PetListQuery{Page: 3})

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(2*petPageSize), *opts.Skip)
	assert.Equal(t, int64(petPageSize), *opts.Limit)

	unpaged := petListOptions(PetListQuery{})
	assert.Nil(t, unpaged.Skip)
	assert.Nil(t, unpaged.Limit)
}
