package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
)

func TestFromNameSelection_EncodesWireNames(t *testing.T) {
	body, err := json.Marshal(FromNameSelection(&cattypes.NameSelection{
		PetType: domain.Dog,
		Names:   []string{"Buddy", "Max", "Charlie"},
		Count:   3,
	}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pet_type":"dog","names":["Buddy","Max","Charlie"],"count":3}`, string(body))
}

func TestFromFactCollection_FlattensPairs(t *testing.T) {
	response := FromFactCollection(&cattypes.FactCollection{
		Facts: []domain.FactEntry{
			{PetType: domain.Dog, Fact: "d1"},
			{PetType: domain.Cat, Fact: "c1"},
		},
		Total:    2,
		PetTypes: []domain.PetType{domain.Dog, domain.Cat},
	})

	body, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"facts":[{"pet_type":"dog","fact":"d1"},{"pet_type":"cat","fact":"c1"}],
		"total_facts":2,
		"pet_types":["dog","cat"]
	}`, string(body))
}

func TestMappers_EmptyListsEncodeAsArrays(t *testing.T) {
	body, err := json.Marshal(FromNameSelection(&cattypes.NameSelection{PetType: "owl"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"pet_type":"owl","names":[],"count":0}`, string(body))

	body, err = json.Marshal(FromPetTypes(&cattypes.PetTypeList{PetTypes: []domain.PetType{}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"available_pets":[],"total_types":0}`, string(body))
}
