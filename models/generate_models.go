package models

import (
	"fmt"
	"log"
	"os"
	"sort"

	zlog "github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Schema tooling.

Set GENERATE_MODELS=true to migrate every model and generate typed query helpers
into ./generated. Set GENERATE_COLUMN_REPORT=true to only print the columns that
exist in the database but are not mapped by the Go structs.

Example output:
	--- Table: projects ---
	Found 1 columns not accounted for in model:
	  - legacy_slug
*/

// All lists every persisted model in migration order
func All() []interface{} {
	return []interface{}{
		&School{},
		&Teacher{},
		&Project{},
		&Donation{},
	}
}

// AutoMigrate creates or updates the tables for every model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}

func GenerateModels(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	// Verbose SQL logging while migrating
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	migrateDB := db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(All()...)

	zlog.Info().Msg("Migrating models...")
	if err := AutoMigrate(migrateDB); err != nil {
		return fmt.Errorf("migrating models: %w", err)
	}
	zlog.Info().Msg("Database migration completed")

	if _, err := GenerateColumnMismatchReport(db); err != nil {
		return err
	}

	g.Execute()
	zlog.Info().Msg("Model generation complete")
	return nil
}

// ColumnMismatch lists the database columns of one table that no model field maps
type ColumnMismatch struct {
	Table   string
	Columns []string
}

// GenerateColumnMismatchReport compares every model's table with its struct fields
// and logs the unmapped columns. Tables that do not exist yet are skipped.
func GenerateColumnMismatchReport(db *gorm.DB) ([]ColumnMismatch, error) {
	var report []ColumnMismatch
	total := 0

	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parsing model %T: %w", model, err)
		}
		tableName := stmt.Schema.Table

		if !db.Migrator().HasTable(model) {
			zlog.Info().Str("table", tableName).Msg("Table does not exist yet (will be created during migration)")
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("reading columns for table %s: %w", tableName, err)
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		mismatches := findColumnMismatches(dbColumns, stmt.Schema.DBNames)
		if len(mismatches) > 0 {
			zlog.Warn().Str("table", tableName).Strs("columns", mismatches).
				Msgf("Found %d columns not accounted for in model", len(mismatches))
			report = append(report, ColumnMismatch{Table: tableName, Columns: mismatches})
			total += len(mismatches)
		} else {
			zlog.Info().Str("table", tableName).Msg("All columns are accounted for in the model")
		}
	}

	zlog.Info().Int("total", total).Msg("Column mismatch report complete")
	return report, nil
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)

	return mismatches
}
