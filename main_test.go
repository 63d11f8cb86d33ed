package main

import (
	"testing"

	"github.com/rpupo63/emp-classrooms-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	dsn, err := connectionString(map[string]string{"DB_TYPE": "local", "DB_NAME": "emp_test"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "dbname=emp_test")
	assert.Contains(t, dsn, "sslmode=disable")

	dsn, err = connectionString(map[string]string{"DB_TYPE": "supa", "SUPABASE_DB_HOST": "db.supabase.test"})
	require.NoError(t, err)
	assert.Contains(t, dsn, "host=db.supabase.test")
	assert.Contains(t, dsn, "sslmode=require")

	dsn, err = connectionString(map[string]string{"DB_TYPE": "url", "DATABASE_URL": "postgres://u:p@h/db"})
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/db", dsn)

	_, err = connectionString(map[string]string{"DB_TYPE": "url"})
	assert.Error(t, err)

	_, err = connectionString(map[string]string{"DB_TYPE": "mongo"})
	require.Error(t, err)
	assert.True(t, errs.IsConfigError(err))
}
