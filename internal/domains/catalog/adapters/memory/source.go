package memory

import (
	"context"

	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

var _ ports.Source = (*Source)(nil)

// Source serves a catalog held in memory, by default the built-in dataset.
type Source struct {
	catalog *domain.Catalog
}

// NewSource returns a source backed by the built-in tables.
func NewSource() *Source {
	return &Source{catalog: domain.Default()}
}

// NewSourceWithCatalog returns a source for a substitute catalog.
func NewSourceWithCatalog(catalog *domain.Catalog) *Source {
	return &Source{catalog: catalog}
}

// Load returns the held catalog.
func (s *Source) Load(_ context.Context) (*domain.Catalog, error) {
	return s.catalog, nil
}
