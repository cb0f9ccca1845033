// Package container wires the dependency graph: config, infrastructure,
// repositories, services, handlers. Everything is a singleton built once at
// startup; construction order follows the dependency direction.
package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"promospedia/internal/config"
	infraCache "promospedia/internal/infrastructure/cache"
	"promospedia/internal/infrastructure/export"
	"promospedia/internal/infrastructure/storage"
	"promospedia/pkg/cache"

	"promospedia/internal/domains/brand"
	brandHandler "promospedia/internal/domains/brand/handler"
	brandRepo "promospedia/internal/domains/brand/repository"
	brandService "promospedia/internal/domains/brand/service"

	"promospedia/internal/domains/promotion"
	promotionHandler "promospedia/internal/domains/promotion/handler"
	promotionRepo "promospedia/internal/domains/promotion/repository"
	promotionService "promospedia/internal/domains/promotion/service"

	"promospedia/internal/domains/item"
	itemHandler "promospedia/internal/domains/item/handler"
	itemRepo "promospedia/internal/domains/item/repository"
	itemService "promospedia/internal/domains/item/service"

	exportHandler "promospedia/internal/domains/export/handler"
	mediaHandler "promospedia/internal/domains/media/handler"
)

type Container struct {
	Config *config.Config
	Cache  cache.Cache

	BrandRepo     brand.Repository
	PromotionRepo promotion.Repository
	ItemRepo      item.Repository

	BrandService     brand.Service
	PromotionService promotion.Service
	ItemService      item.Service

	BrandHandler     *brandHandler.BrandHandler
	PromotionHandler *promotionHandler.PromotionHandler
	ItemHandler      *itemHandler.ItemHandler
	ExportHandler    *exportHandler.ExportHandler

	// MediaHandler is nil when MinIO is not configured; the router skips
	// the upload routes in that case.
	MediaHandler *mediaHandler.MediaHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	// Redis when configured, in-process cache otherwise. The catalog works
	// the same either way; Redis just survives restarts and is shared.
	if cfg.Redis.Host != "" {
		redisCache, err := infraCache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.Cache = redisCache
		log.Info().Str("host", cfg.Redis.Host).Msg("redis cache connected")
	} else {
		c.Cache = cache.NewMemory()
		log.Info().Msg("using in-process cache")
	}

	c.BrandRepo = brandRepo.NewMemoryRepository()
	c.PromotionRepo = promotionRepo.NewMemoryRepository()
	c.ItemRepo = itemRepo.NewMemoryRepository()

	c.BrandService = brandService.NewBrandService(c.BrandRepo, c.PromotionRepo, c.Cache)
	c.PromotionService = promotionService.NewPromotionService(c.PromotionRepo, c.BrandRepo, c.ItemRepo, c.Cache)
	c.ItemService = itemService.NewItemService(c.ItemRepo, c.PromotionRepo)

	c.BrandHandler = brandHandler.NewBrandHandler(c.BrandService, c.PromotionService)
	c.PromotionHandler = promotionHandler.NewPromotionHandler(c.PromotionService, c.ItemService)
	c.ItemHandler = itemHandler.NewItemHandler(c.ItemService)

	exporter := export.NewCatalogExporter(c.BrandService, c.PromotionService, c.ItemService)
	c.ExportHandler = exportHandler.NewExportHandler(exporter)

	if cfg.MinIO.Endpoint != "" {
		minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize minio: %w", err)
		}
		c.MediaHandler = mediaHandler.NewMediaHandler(minioStorage, storage.NewImageProcessor())
		log.Info().Str("endpoint", cfg.MinIO.Endpoint).Msg("minio storage ready")
	} else {
		log.Warn().Msg("minio not configured, image upload routes disabled")
	}

	return c, nil
}
