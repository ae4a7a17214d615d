package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/pet-name-generator/internal/domains/catalog/domain"
	"github.com/Apurer/pet-name-generator/internal/domains/catalog/ports"
)

var _ ports.Source = (*Source)(nil)

const (
	kindNames = "names"
	kindFacts = "facts"
)

// ErrEmptyCatalog is returned when the catalog tables hold no rows.
var ErrEmptyCatalog = errors.New("postgres catalog tables are empty")

// Source loads the catalog from PostgreSQL using GORM. Caller manages DB lifecycle.
type Source struct {
	db *gorm.DB
}

// NewSource wires a PostgreSQL-backed catalog source.
func NewSource(db *gorm.DB) *Source {
	return &Source{db: db}
}

// catalogTableRecord stores one ordered table entry list per (kind, pet type).
type catalogTableRecord struct {
	ID        int64          `gorm:"primaryKey;column:id"`
	Kind      string         `gorm:"column:kind;type:varchar(16);uniqueIndex:idx_catalog_kind_type"`
	PetType   string         `gorm:"column:pet_type;type:varchar(64);uniqueIndex:idx_catalog_kind_type"`
	Position  int            `gorm:"column:position"`
	Entries   pq.StringArray `gorm:"column:entries;type:text[]"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
}

func (catalogTableRecord) TableName() string { return "catalog_tables" }

// Load reads both tables ordered by position and builds an immutable catalog.
func (s *Source) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []catalogTableRecord
	if err := s.db.WithContext(ctx).
		Order("kind").Order("position").Order("id").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query catalog tables: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyCatalog
	}
	var names, facts []domain.Table
	for _, record := range records {
		table := domain.Table{PetType: domain.PetType(record.PetType), Entries: []string(record.Entries)}
		switch record.Kind {
		case kindNames:
			names = append(names, table)
		case kindFacts:
			facts = append(facts, table)
		default:
			return nil, fmt.Errorf("catalog table %d has unknown kind %q", record.ID, record.Kind)
		}
	}
	return domain.NewCatalog(names, facts)
}

// Seed upserts every table of the catalog in a single transaction.
func (s *Source) Seed(ctx context.Context, catalog *domain.Catalog) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	if catalog == nil {
		return errors.New("catalog is nil")
	}
	records := append(toRecords(kindNames, catalog.NameTables()), toRecords(kindFacts, catalog.FactTables())...)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "kind"}, {Name: "pet_type"}},
				DoUpdates: clause.Assignments(map[string]any{
					"position":   records[i].Position,
					"entries":    records[i].Entries,
					"updated_at": gorm.Expr("NOW()"),
				}),
			}).Create(&records[i]).Error; err != nil {
				return fmt.Errorf("upsert %s/%s: %w", records[i].Kind, records[i].PetType, err)
			}
		}
		return nil
	})
}

func toRecords(kind string, tables []domain.Table) []catalogTableRecord {
	records := make([]catalogTableRecord, 0, len(tables))
	for i, table := range tables {
		records = append(records, catalogTableRecord{
			Kind:     kind,
			PetType:  string(table.PetType),
			Position: i,
			Entries:  pq.StringArray(table.Entries),
		})
	}
	return records
}

func (s *Source) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres catalog source not configured")
	}
	return nil
}
