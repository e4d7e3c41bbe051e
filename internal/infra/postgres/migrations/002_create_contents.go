package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// createContentsTable creates the contents table with all indexes.
func createContentsTable() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "002_create_contents",
		Migrate: func(tx *gorm.DB) error {
			err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS contents (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					content_id BIGINT NOT NULL,
					title VARCHAR(500) NOT NULL,
					type VARCHAR(20) NOT NULL,

					-- Provider-sourced metadata
					original_title VARCHAR(500),
					tagline TEXT,
					overview TEXT,
					release_date VARCHAR(20),
					poster_url TEXT,
					backdrop_url TEXT,
					vote_average VARCHAR(10),

					recommended BOOLEAN NOT NULL DEFAULT FALSE,
					category_id BIGINT REFERENCES categories(category_id),

					created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
					updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

					-- External id is unique across the catalogue
					CONSTRAINT uq_contents_content_id UNIQUE (content_id)
				);
			`).Error
			if err != nil {
				return err
			}

			indexes := []string{
				"CREATE INDEX IF NOT EXISTS idx_contents_type ON contents(type);",
				"CREATE INDEX IF NOT EXISTS idx_contents_recommended ON contents(recommended) WHERE recommended;",
				"CREATE INDEX IF NOT EXISTS idx_contents_category_id ON contents(category_id);",
				"CREATE INDEX IF NOT EXISTS idx_contents_created_at ON contents(created_at, id);",
			}

			for _, idx := range indexes {
				if err := tx.Exec(idx).Error; err != nil {
					return err
				}
			}

			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			return tx.Exec("DROP TABLE IF EXISTS contents;").Error
		},
	}
}
