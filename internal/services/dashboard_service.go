// internal/services/dashboard_service.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/atelier-gestor/atelier/internal/models"
)

const (
	dashboardCacheKey   = "dashboard:v1"
	recentOrdersLimit   = 5
	defaultDashboardTTL = time.Minute
)

// DashboardCache stores the last computed dashboard.
type DashboardCache interface {
	Get(ctx context.Context) (*models.Dashboard, bool)
	Set(ctx context.Context, dashboard *models.Dashboard)
	Invalidate(ctx context.Context)
}

type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &RedisDashboardCache{client: client, ttl: ttl}
}

func (c *RedisDashboardCache) Get(ctx context.Context) (*models.Dashboard, bool) {
	cached, err := c.client.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).Warn("Dashboard cache read failed")
		}
		return nil, false
	}

	var dashboard models.Dashboard
	if err := json.Unmarshal(cached, &dashboard); err != nil {
		logrus.WithError(err).Warn("Dashboard cache entry is corrupt")
		return nil, false
	}
	return &dashboard, true
}

func (c *RedisDashboardCache) Set(ctx context.Context, dashboard *models.Dashboard) {
	data, err := json.Marshal(dashboard)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, dashboardCacheKey, data, c.ttl).Err(); err != nil {
		logrus.WithError(err).Warn("Dashboard cache write failed")
	}
}

func (c *RedisDashboardCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, dashboardCacheKey).Err(); err != nil {
		logrus.WithError(err).Warn("Dashboard cache invalidation failed")
	}
}

type DashboardService struct {
	db    *gorm.DB
	cache DashboardCache
	now   func() time.Time
}

// NewDashboardService accepts a nil cache.
func NewDashboardService(db *gorm.DB, cache DashboardCache) *DashboardService {
	return &DashboardService{db: db, cache: cache, now: time.Now}
}

func (s *DashboardService) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	if s.cache != nil {
		if dashboard, ok := s.cache.Get(ctx); ok {
			return dashboard, nil
		}
	}

	dashboard := &models.Dashboard{
		RecentOrders: []models.Order{},
		Birthdays:    []models.Client{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var rows []models.StatusCount
		err := s.db.WithContext(gctx).Model(&models.Order{}).
			Select("status, COUNT(id) AS count, COALESCE(SUM(total), 0) AS sum").
			Group("status").
			Scan(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to aggregate orders: %w", err)
		}
		for _, row := range rows {
			dashboard.Stats.Add(row)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Preload("Client").
			Preload("Items").
			Order("id DESC").
			Limit(recentOrdersLimit).
			Find(&dashboard.RecentOrders).Error
		if err != nil {
			return fmt.Errorf("failed to load recent orders: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := s.db.WithContext(gctx).
			Where("EXTRACT(MONTH FROM birth_date) = ?", int(s.now().Month())).
			Order("EXTRACT(DAY FROM birth_date) ASC").
			Find(&dashboard.Birthdays).Error
		if err != nil {
			return fmt.Errorf("failed to load birthdays: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, dashboard)
	}
	return dashboard, nil
}

// Invalidate drops the cached dashboard after an order write.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
