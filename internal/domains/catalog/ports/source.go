package ports

import (
	"context"

	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
)

// Source loads the catalog once at startup (outbound/driven port).
type Source interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}
