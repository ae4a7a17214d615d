package migrations

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Run applies the schema used by the Postgres catalog source.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&catalogTableRecord{})
}

// Catalog table schema mirrors the catalog Postgres adapter.
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
