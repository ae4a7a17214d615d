package mapper

import (
	"github.com/samber/lo"

	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
)

// HealthResponse is the HTTP representation of the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PetTypesResponse lists the pet types usable for name generation.
type PetTypesResponse struct {
	AvailablePets []string `json:"available_pets"`
	TotalTypes    int      `json:"total_types"`
}

// PetNamesResponse carries a name selection.
type PetNamesResponse struct {
	PetType string   `json:"pet_type"`
	Names   []string `json:"names"`
	Count   int      `json:"count"`
}

// RandomNameResponse carries a single random name.
type RandomNameResponse struct {
	PetType string `json:"pet_type"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// PetFactsResponse lists the facts of one pet type.
type PetFactsResponse struct {
	PetType    string   `json:"pet_type"`
	Facts      []string `json:"facts"`
	TotalFacts int      `json:"total_facts"`
}

// PetFactResponse carries a single fact.
type PetFactResponse struct {
	PetType string `json:"pet_type"`
	Fact    string `json:"fact"`
}

// AllFactsResponse is the flattened fact listing.
type AllFactsResponse struct {
	Facts      []PetFactResponse `json:"facts"`
	TotalFacts int               `json:"total_facts"`
	PetTypes   []string          `json:"pet_types"`
}

// FromHealth maps the liveness payload.
func FromHealth(health *cattypes.HealthStatus) HealthResponse {
	if health == nil {
		return HealthResponse{}
	}
	return HealthResponse{Status: health.Status, Message: health.Message}
}

// FromPetTypes maps the pet type listing.
func FromPetTypes(list *cattypes.PetTypeList) PetTypesResponse {
	if list == nil {
		return PetTypesResponse{AvailablePets: []string{}}
	}
	return PetTypesResponse{AvailablePets: toStrings(list.PetTypes), TotalTypes: list.Total}
}

// FromNameSelection maps a name selection.
func FromNameSelection(selection *cattypes.NameSelection) PetNamesResponse {
	if selection == nil {
		return PetNamesResponse{Names: []string{}}
	}
	return PetNamesResponse{
		PetType: string(selection.PetType),
		Names:   nonNil(selection.Names),
		Count:   selection.Count,
	}
}

// FromRandomName maps a single random name.
func FromRandomName(result *cattypes.RandomName) RandomNameResponse {
	if result == nil {
		return RandomNameResponse{}
	}
	return RandomNameResponse{PetType: string(result.PetType), Name: result.Name, Message: result.Message}
}

// FromFactList maps the facts of one pet type.
func FromFactList(list *cattypes.FactList) PetFactsResponse {
	if list == nil {
		return PetFactsResponse{Facts: []string{}}
	}
	return PetFactsResponse{PetType: string(list.PetType), Facts: nonNil(list.Facts), TotalFacts: list.Total}
}

// FromFact maps a single fact.
func FromFact(fact *cattypes.Fact) PetFactResponse {
	if fact == nil {
		return PetFactResponse{}
	}
	return PetFactResponse{PetType: string(fact.PetType), Fact: fact.Fact}
}

// FromFactCollection maps the flattened fact listing.
func FromFactCollection(collection *cattypes.FactCollection) AllFactsResponse {
	if collection == nil {
		return AllFactsResponse{Facts: []PetFactResponse{}, PetTypes: []string{}}
	}
	return AllFactsResponse{
		Facts: lo.Map(collection.Facts, func(entry domain.FactEntry, _ int) PetFactResponse {
			return PetFactResponse{PetType: string(entry.PetType), Fact: entry.Fact}
		}),
		TotalFacts: collection.Total,
		PetTypes:   toStrings(collection.PetTypes),
	}
}

func toStrings(petTypes []domain.PetType) []string {
	return lo.Map(petTypes, func(petType domain.PetType, _ int) string {
		return string(petType)
	})
}

// nonNil keeps empty lists encoded as [] rather than null.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
