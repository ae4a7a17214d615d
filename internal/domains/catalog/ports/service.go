package ports

import (
	"context"

	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
)

// Service defines the catalog use cases exposed to adapters (inbound/driving port).
type Service interface {
	SelectNames(ctx context.Context, input cattypes.SelectNamesInput) (*cattypes.NameSelection, error)
	RandomName(ctx context.Context, input cattypes.PetTypeInput) (*cattypes.RandomName, error)
	Facts(ctx context.Context, input cattypes.PetTypeInput) (*cattypes.FactList, error)
	RandomFact(ctx context.Context, input cattypes.PetTypeInput) (*cattypes.Fact, error)
	AllFacts(ctx context.Context) (*cattypes.FactCollection, error)
	RandomFactAcrossAll(ctx context.Context) (*cattypes.Fact, error)
	AvailablePetTypes(ctx context.Context) (*cattypes.PetTypeList, error)
	Health(ctx context.Context) (*cattypes.HealthStatus, error)
}
