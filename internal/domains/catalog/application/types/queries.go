package types

import "github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"

// SelectNamesInput requests a subset of names for a pet type.
type SelectNamesInput struct {
	PetType         string
	Count           int
	RandomSelection bool
}

// PetTypeInput identifies a pet type supplied by a caller.
type PetTypeInput struct {
	PetType string
}

// NameSelection is the outcome of a name selection.
type NameSelection struct {
	PetType domain.PetType
	Names   []string
	Count   int
}

// RandomName carries a single drawn name and its congratulatory message.
type RandomName struct {
	PetType domain.PetType
	Name    string
	Message string
}

// FactList holds every fact of one pet type.
type FactList struct {
	PetType domain.PetType
	Facts   []string
	Total   int
}

// Fact is a single fact with its pet type.
type Fact struct {
	PetType domain.PetType
	Fact    string
}

// FactCollection is the flattened listing across all pet types.
type FactCollection struct {
	Facts    []domain.FactEntry
	Total    int
	PetTypes []domain.PetType
}

// PetTypeList enumerates the pet types usable for name generation.
type PetTypeList struct {
	PetTypes []domain.PetType
	Total    int
}

// HealthStatus is the static liveness payload.
type HealthStatus struct {
	Status  string
	Message string
}
