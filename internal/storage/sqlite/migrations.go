package sqlite

import (
	"fmt"
	"log"
)

// runMigrations applies any pending database migrations
func (b *Backend) runMigrations() error {
	// Run description column migration
	if err := b.runDescriptionMigration(); err != nil {
		return err
	}

	return nil
}

// runDescriptionMigration adds the description column to databases created
// before it existed.
func (b *Backend) runDescriptionMigration() error {
	var count int
	err := b.conn.QueryRow(`
		SELECT COUNT(*)
		FROM pragma_table_info('todos')
		WHERE name = 'description'
	`).Scan(&count)

	if err != nil {
		return fmt.Errorf("checking for description column: %w", err)
	}

	// If the column doesn't exist, add it
	if count < 1 {
		log.Println("Running migration: Adding description column...")

		_, err = b.conn.Exec(`ALTER TABLE todos ADD COLUMN description TEXT`)
		if err != nil {
			return fmt.Errorf("adding description column: %w", err)
		}

		log.Println("Migration completed successfully")
	}

	return nil
}
