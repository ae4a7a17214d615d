package application

import (
	"context"
	"fmt"
	"math/rand/v2"

	cattypes "github.com/Apurer/pet-name-generator/internal/domains/catalog/application/types"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

const (
	MinCount = 1
	MaxCount = 10

	HealthStatus  = "healthy"
	HealthMessage = "Pet Name Generator API is running smoothly! 🐾"
)

// Service orchestrates the catalog use cases.
type Service struct {
	catalog *domain.Catalog
	sampler ports.Sampler
}

type Option func(*Service)

// WithSampler overrides the randomness source.
func WithSampler(sampler ports.Sampler) Option {
	return func(s *Service) {
		if sampler != nil {
			s.sampler = sampler
		}
	}
}

// NewService wires the catalog service with its dependencies.
func NewService(catalog *domain.Catalog, opts ...Option) *Service {
	s := &Service{catalog: catalog, sampler: globalSampler{}}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// SelectNames returns up to Count names, sampled without replacement or in table order.
func (s *Service) SelectNames(_ context.Context, input cattypes.SelectNamesInput) (*cattypes.NameSelection, error) {
	petType := domain.Normalize(input.PetType)
	names, ok := s.catalog.Names(petType)
	if !ok {
		return nil, notFound(petType, s.catalog.NameTypes())
	}
	if input.Count < MinCount || input.Count > MaxCount {
		return nil, invalidCount()
	}
	n := min(input.Count, len(names))
	selected := make([]string, 0, n)
	if input.RandomSelection {
		for _, idx := range s.sampler.Sample(len(names), n) {
			selected = append(selected, names[idx])
		}
	} else {
		selected = append(selected, names[:n]...)
	}
	return &cattypes.NameSelection{PetType: petType, Names: selected, Count: len(selected)}, nil
}

// RandomName draws a single name for the pet type.
func (s *Service) RandomName(_ context.Context, input cattypes.PetTypeInput) (*cattypes.RandomName, error) {
	petType := domain.Normalize(input.PetType)
	names, ok := s.catalog.Names(petType)
	if !ok {
		return nil, notFound(petType, s.catalog.NameTypes())
	}
	name, err := s.pick(names)
	if err != nil {
		return nil, fmt.Errorf("names for %s: %w", petType, err)
	}
	return &cattypes.RandomName{
		PetType: petType,
		Name:    name,
		Message: fmt.Sprintf("Perfect name for your %s! 🐾", petType),
	}, nil
}

// Facts lists every fact of the pet type in table order.
func (s *Service) Facts(_ context.Context, input cattypes.PetTypeInput) (*cattypes.FactList, error) {
	petType := domain.Normalize(input.PetType)
	facts, ok := s.catalog.Facts(petType)
	if !ok {
		return nil, notFound(petType, s.catalog.FactTypes())
	}
	return &cattypes.FactList{PetType: petType, Facts: facts, Total: len(facts)}, nil
}

// RandomFact draws a single fact for the pet type.
func (s *Service) RandomFact(_ context.Context, input cattypes.PetTypeInput) (*cattypes.Fact, error) {
	petType := domain.Normalize(input.PetType)
	facts, ok := s.catalog.Facts(petType)
	if !ok {
		return nil, notFound(petType, s.catalog.FactTypes())
	}
	fact, err := s.pick(facts)
	if err != nil {
		return nil, fmt.Errorf("facts for %s: %w", petType, err)
	}
	return &cattypes.Fact{PetType: petType, Fact: fact}, nil
}

// AllFacts returns every (pet type, fact) pair across the facts table.
func (s *Service) AllFacts(_ context.Context) (*cattypes.FactCollection, error) {
	entries := s.catalog.AllFacts()
	return &cattypes.FactCollection{
		Facts:    entries,
		Total:    len(entries),
		PetTypes: s.catalog.FactTypes(),
	}, nil
}

// RandomFactAcrossAll draws uniformly over individual facts, so pet types with
// more facts are proportionally more likely.
func (s *Service) RandomFactAcrossAll(_ context.Context) (*cattypes.Fact, error) {
	entries := s.catalog.AllFacts()
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}
	entry := entries[s.sampler.Intn(len(entries))]
	return &cattypes.Fact{PetType: entry.PetType, Fact: entry.Fact}, nil
}

// AvailablePetTypes lists the keys of the names table.
func (s *Service) AvailablePetTypes(_ context.Context) (*cattypes.PetTypeList, error) {
	petTypes := s.catalog.NameTypes()
	return &cattypes.PetTypeList{PetTypes: petTypes, Total: len(petTypes)}, nil
}

// Health reports the static liveness payload.
func (s *Service) Health(_ context.Context) (*cattypes.HealthStatus, error) {
	return &cattypes.HealthStatus{Status: HealthStatus, Message: HealthMessage}, nil
}

func (s *Service) pick(entries []string) (string, error) {
	if len(entries) == 0 {
		return "", ErrEmptyCatalog
	}
	return entries[s.sampler.Intn(len(entries))], nil
}

// globalSampler draws from the concurrency-safe top-level math/rand/v2 source.
type globalSampler struct{}

func (globalSampler) Intn(n int) int { return rand.IntN(n) }

func (globalSampler) Sample(n, k int) []int { return rand.Perm(n)[:k] }

var _ ports.Service = (*Service)(nil)
