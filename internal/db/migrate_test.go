package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	files, err := fs.Glob(migrations, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		raw, err := fs.ReadFile(migrations, name)
		require.NoError(t, err)

		body := string(raw)
		assert.True(t, strings.Contains(body, "-- +goose Up"), name)
		assert.True(t, strings.Contains(body, "-- +goose Down"), name)
	}
}

func TestMigrations_ConstraintsMatchModels(t *testing.T) {
	raw, err := fs.ReadFile(migrations, migrationsDir+"/00001_init.sql")
	require.NoError(t, err)
	body := string(raw)

	for _, want := range []string{
		"CONSTRAINT clientes_email_key UNIQUE (email)",
		"CONSTRAINT barbeiros_email_key UNIQUE (email)",
		"CHECK (preco > 0)",
		"CHECK (nota BETWEEN 1 AND 5)",
		"ON DELETE CASCADE",
	} {
		assert.Contains(t, body, want)
	}
}
