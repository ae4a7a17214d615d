package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// PetType identifies one category of pets in the catalog.
type PetType string

// Normalize lowercases and trims a raw pet type received from a caller.
func Normalize(raw string) PetType {
	return PetType(strings.ToLower(strings.TrimSpace(raw)))
}

// Table is an ordered list of entries associated with a pet type.
type Table struct {
	PetType PetType
	Entries []string
}

// FactEntry pairs a fact with the pet type it belongs to.
type FactEntry struct {
	PetType PetType
	Fact    string
}

var (
	ErrEmptyPetType     = errors.New("pet type is required")
	ErrDuplicatePetType = errors.New("pet type declared twice")
	ErrPetTypeCase      = errors.New("pet type must be lowercase")
)

// Catalog holds the immutable name and fact tables. The two tables have
// independent key sets.
type Catalog struct {
	nameOrder []PetType
	names     map[PetType][]string
	factOrder []PetType
	facts     map[PetType][]string
}

// NewCatalog validates both tables and copies them into a new catalog.
func NewCatalog(names, facts []Table) (*Catalog, error) {
	nameOrder, nameIndex, err := buildIndex("names", names)
	if err != nil {
		return nil, err
	}
	factOrder, factIndex, err := buildIndex("facts", facts)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		nameOrder: nameOrder,
		names:     nameIndex,
		factOrder: factOrder,
		facts:     factIndex,
	}, nil
}

func buildIndex(table string, tables []Table) ([]PetType, map[PetType][]string, error) {
	order := make([]PetType, 0, len(tables))
	index := make(map[PetType][]string, len(tables))
	for _, t := range tables {
		if strings.TrimSpace(string(t.PetType)) == "" {
			return nil, nil, fmt.Errorf("%s table: %w", table, ErrEmptyPetType)
		}
		if Normalize(string(t.PetType)) != t.PetType {
			return nil, nil, fmt.Errorf("%s table %q: %w", table, t.PetType, ErrPetTypeCase)
		}
		if _, exists := index[t.PetType]; exists {
			return nil, nil, fmt.Errorf("%s table %q: %w", table, t.PetType, ErrDuplicatePetType)
		}
		order = append(order, t.PetType)
		index[t.PetType] = slices.Clone(t.Entries)
	}
	return order, index, nil
}

// HasNames reports whether the names table contains the pet type.
func (c *Catalog) HasNames(petType PetType) bool {
	_, ok := c.names[petType]
	return ok
}

// HasFacts reports whether the facts table contains the pet type.
func (c *Catalog) HasFacts(petType PetType) bool {
	_, ok := c.facts[petType]
	return ok
}

// Names returns a copy of the name list for the pet type.
func (c *Catalog) Names(petType PetType) ([]string, bool) {
	names, ok := c.names[petType]
	if !ok {
		return nil, false
	}
	return slices.Clone(names), true
}

// Facts returns a copy of the fact list for the pet type.
func (c *Catalog) Facts(petType PetType) ([]string, bool) {
	facts, ok := c.facts[petType]
	if !ok {
		return nil, false
	}
	return slices.Clone(facts), true
}

// NameTypes lists the keys of the names table in definition order.
func (c *Catalog) NameTypes() []PetType {
	return slices.Clone(c.nameOrder)
}

// FactTypes lists the keys of the facts table in definition order.
func (c *Catalog) FactTypes() []PetType {
	return slices.Clone(c.factOrder)
}

// AllFacts flattens the facts table in definition order.
func (c *Catalog) AllFacts() []FactEntry {
	return lo.FlatMap(c.factOrder, func(petType PetType, _ int) []FactEntry {
		return lo.Map(c.facts[petType], func(fact string, _ int) FactEntry {
			return FactEntry{PetType: petType, Fact: fact}
		})
	})
}

// NameTables exports the names table, used when seeding external stores.
func (c *Catalog) NameTables() []Table {
	return exportTables(c.nameOrder, c.names)
}

// FactTables exports the facts table, used when seeding external stores.
func (c *Catalog) FactTables() []Table {
	return exportTables(c.factOrder, c.facts)
}

func exportTables(order []PetType, index map[PetType][]string) []Table {
	return lo.Map(order, func(petType PetType, _ int) Table {
		return Table{PetType: petType, Entries: slices.Clone(index[petType])}
	})
}
