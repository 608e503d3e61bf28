package migration

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
)

// Run applies any pending SQL migrations from internal/migration.
func Run(db *sql.DB) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	applied, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	log.Printf("Applied %d migrations", applied)
	return nil
}
