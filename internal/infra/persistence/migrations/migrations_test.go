package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_ProvidesInitialMigration(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, identifier, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	assert.Equal(t, "init", identifier)

	body, err := io.ReadAll(up)
	require.NoError(t, err)
	for _, table := range []string{"accounts", "contacts", "leads", "lead_accounts", "lead_details", "lead_notes", "lead_products", "users"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	defer down.Close()

	downBody, err := io.ReadAll(down)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(downBody), "DROP TABLE IF EXISTS lead_products;"))
}

func TestSource_SingleVersion(t *testing.T) {
	src, err := Source()
	require.NoError(t, err)
	defer src.Close()

	_, err = src.Next(1)
	assert.Error(t, err)
}
