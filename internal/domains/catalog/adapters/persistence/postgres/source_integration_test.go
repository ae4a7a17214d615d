//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	"github.com/Apurer/pet-name-generator/internal/platform/migrations"
)

func setupPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("petnames_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func TestSource_SeedThenLoadPreservesOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	source := NewSource(db)
	ctx := context.Background()
	original := domain.Default()

	require.NoError(t, source.Seed(ctx, original))
	// Seeding twice must upsert rather than duplicate.
	require.NoError(t, source.Seed(ctx, original))

	loaded, err := source.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, original.NameTypes(), loaded.NameTypes())
	assert.Equal(t, original.FactTypes(), loaded.FactTypes())
	assert.Equal(t, original.AllFacts(), loaded.AllFacts())

	birds, ok := loaded.Names(domain.Bird)
	require.True(t, ok)
	expected, _ := original.Names(domain.Bird)
	assert.Equal(t, expected, birds)
}

func TestSource_LoadEmptyTables(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupPostgresContainer(t)
	defer cleanup()

	_, err := NewSource(db).Load(context.Background())
	require.ErrorIs(t, err, ErrEmptyCatalog)
}
