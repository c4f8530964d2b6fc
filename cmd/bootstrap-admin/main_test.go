package main

import (
	"context"
	"testing"

	"github.com/sbilibin2017/gw-veritas/internal/services"
	"github.com/sbilibin2017/gw-veritas/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	path, args, err := parseArgs([]string{"-c", "prod.env", "root@example.com", "root", "Admin1234"})
	require.NoError(t, err)
	assert.Equal(t, "prod.env", path)
	assert.Equal(t, []string{"root@example.com", "root", "Admin1234"}, args)

	path, _, err = parseArgs([]string{"root@example.com", "root", "Admin1234"})
	require.NoError(t, err)
	assert.Equal(t, "config.env", path)

	_, _, err = parseArgs([]string{"root@example.com", "root"})
	assert.Error(t, err)
}

func TestCreateAdmin(t *testing.T) {
	db := testutil.StartPostgres(t)
	ctx := context.Background()

	admin, err := createAdmin(ctx, db, "root@example.com", "Root", "Admin1234")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "root", admin.Username)

	_, err = createAdmin(ctx, db, "other@example.com", "root", "Admin1234")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)

	_, err = createAdmin(ctx, db, "weak@example.com", "weak", "password")
	assert.ErrorContains(t, err, "validation failed")
	assert.Equal(t, 0, testutil.CountRows(t, db, "users", "username = $1", "weak"))
}
