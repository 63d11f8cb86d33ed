package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestProjectUpdate_ApplyTo(t *testing.T) {
	approved := false
	p := Project{
		Title:            "Old",
		ShortDescription: "short",
		Synopsis:         "synopsis",
		TotalPrice:       100,
		CostToComplete:   40,
		IsApproved:       &approved,
	}

	title := "New"
	ProjectUpdate{Title: &title}.ApplyTo(&p)

	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "short", p.ShortDescription)
	assert.Equal(t, "synopsis", p.Synopsis)
	assert.Equal(t, 100.0, p.TotalPrice)
	assert.Equal(t, 40.0, p.CostToComplete)
	require.NotNil(t, p.IsApproved)
	assert.False(t, *p.IsApproved)

	yes := true
	price := 250.0
	ProjectUpdate{IsApproved: &yes, TotalPrice: &price}.ApplyTo(&p)
	assert.True(t, *p.IsApproved)
	assert.Equal(t, 250.0, p.TotalPrice)
	assert.Equal(t, 40.0, p.CostToComplete)

	// the update payload must not alias the stored flag
	yes = false
	assert.True(t, *p.IsApproved)
}

func TestFindColumnMismatches(t *testing.T) {
	got := findColumnMismatches([]string{"id", "title", "zeta", "legacy"}, []string{"id", "title"})
	assert.Equal(t, []string{"legacy", "zeta"}, got)
	assert.Empty(t, findColumnMismatches([]string{"id"}, []string{"id", "title"}))
}

func TestGenerateColumnMismatchReport(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, AutoMigrate(db))

	report, err := GenerateColumnMismatchReport(db)
	require.NoError(t, err)
	assert.Empty(t, report)

	require.NoError(t, db.Exec("ALTER TABLE projects ADD COLUMN legacy_slug text").Error)

	report, err = GenerateColumnMismatchReport(db)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "projects", report[0].Table)
	assert.Equal(t, []string{"legacy_slug"}, report[0].Columns)
}
