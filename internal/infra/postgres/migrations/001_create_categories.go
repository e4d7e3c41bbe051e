package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createCategoriesTable creates the categories table.
func createCategoriesTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "001_create_categories",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS categories (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					category_id BIGINT NOT NULL,
					name VARCHAR(100) NOT NULL,

					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					-- External genre id is unique across the taxonomy
					CONSTRAINT uq_categories_category_id UNIQUE (category_id)
				);
			`).Error
			if err != nil {
				return err
			}

			return tx.Exec(
				"CREATE INDEX IF NOT EXISTS idx_categories_created_at ON categories(created_at, id);",
			).Error
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS categories;").Error
		},
	}
}
