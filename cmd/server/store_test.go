package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/mock_ecom/internal/seed"
	"github.com/Skotchmaster/mock_ecom/pkg/config"
	"github.com/Skotchmaster/mock_ecom/pkg/db"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

func TestOpenStore_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.Config{
		StoreDriver: config.StoreSQL,
		DBDriver:    db.DriverSQLite,
		DatabaseURL: "file:cmd_open_store?mode=memory&cache=shared",
	}
	l := logging.NewWithWriter(&bytes.Buffer{}, "error")

	store, err := openStore(ctx, cfg, l)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(ctx) })

	require.NoError(t, store.Ping(ctx))
	added, err := seed.Run(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, len(seed.MockProducts), added)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, err := openStore(context.Background(), config.Config{StoreDriver: "cassandra"}, logging.NewWithWriter(&bytes.Buffer{}, "error"))
	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}
