package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapCache struct {
	data map[string][]byte
	hits int
}

func (c *mapCache) Get(_ context.Context, key string, dest any) bool {
	raw, ok := c.data[key]
	if !ok {
		return false
	}
	c.hits++
	return json.Unmarshal(raw, dest) == nil
}

func (c *mapCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func TestListProducts_Pagination(t *testing.T) {
	ctx := context.Background()
	svc := &CatalogService{Repo: newStore(t, true)}

	page, err := svc.ListProducts(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.EqualValues(t, 32, page.TotalProducts)
	assert.EqualValues(t, 4, page.TotalPages)
	require.Len(t, page.Products, 10)
	assert.Equal(t, "Laptop", page.Products[0].Name)

	page, err = svc.ListProducts(ctx, 4, 10)
	require.NoError(t, err)
	require.Len(t, page.Products, 2)
	assert.Equal(t, "Mechanical Keyboard", page.Products[1].Name)

	page, err = svc.ListProducts(ctx, 9, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Products)
}

func TestListProducts_UsesCache(t *testing.T) {
	ctx := context.Background()
	c := &mapCache{data: map[string][]byte{}}
	svc := &CatalogService{Repo: newStore(t, true), Cache: c, CacheTTL: time.Minute}

	first, err := svc.ListProducts(ctx, 2, 5)
	require.NoError(t, err)
	assert.Zero(t, c.hits)
	assert.Contains(t, c.data, "products:2:5")

	second, err := svc.ListProducts(ctx, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, first, second)
}
