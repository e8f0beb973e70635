package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Skotchmaster/mock_ecom/internal/cache"
	"github.com/Skotchmaster/mock_ecom/internal/models"
	"github.com/Skotchmaster/mock_ecom/internal/repo"
	"github.com/Skotchmaster/mock_ecom/internal/util"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
)

type CatalogService struct {
	Repo     repo.CatalogRepo
	Cache    cache.Cache
	CacheTTL time.Duration
}

type ProductPage struct {
	Page          int              `json:"page"`
	Limit         int              `json:"limit"`
	TotalProducts int64            `json:"totalProducts"`
	TotalPages    int64            `json:"totalPages"`
	Products      []models.Product `json:"products"`
}

func (s *CatalogService) ListProducts(ctx context.Context, page, limit int) (*ProductPage, error) {
	page, limit = util.Normalize(page, limit)
	key := fmt.Sprintf("products:%d:%d", page, limit)

	var cached ProductPage
	if s.Cache != nil && s.Cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	offset, limit := util.Calculate(page, limit)
	total, items, err := s.Repo.GetProducts(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	out := &ProductPage{
		Page:          page,
		Limit:         limit,
		TotalProducts: total,
		TotalPages:    util.TotalPages(total, limit),
		Products:      items,
	}

	if s.Cache != nil && s.CacheTTL > 0 {
		if err := s.Cache.Set(ctx, key, out, s.CacheTTL); err != nil {
			logging.FromContext(ctx).Warn("catalog_cache_set_failed", "key", key, "error", err)
		}
	}
	return out, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.Repo.GetProduct(ctx, id)
}
