package container

import (
	"context"
	"fmt"
	"log"

	"catalog-backend/internal/config"
	infraCache "catalog-backend/internal/infrastructure/cache"
	"catalog-backend/internal/infrastructure/database"
	"catalog-backend/internal/infrastructure/docstore"
	"catalog-backend/internal/infrastructure/storage"
	"catalog-backend/pkg/cache"

	"catalog-backend/internal/domains/person"
	personHandler "catalog-backend/internal/domains/person/handler"
	personRepo "catalog-backend/internal/domains/person/repository"
	personService "catalog-backend/internal/domains/person/service"

	"catalog-backend/internal/domains/work"
	workHandler "catalog-backend/internal/domains/work/handler"
	workRepo "catalog-backend/internal/domains/work/repository"
	workService "catalog-backend/internal/domains/work/service"

	"catalog-backend/internal/domains/search"
	searchHandler "catalog-backend/internal/domains/search/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa toàn bộ dependencies của application.
// Đây là "root" của dependency graph; mọi component là singleton.
type Container struct {
	// Infrastructure layer
	Config   *config.Config
	DB       *database.PostgresDB // nil khi DOCSTORE_DRIVER=memory
	Docstore docstore.Store
	Cache    cache.Cache // nil khi REDIS_ENABLED=false
	Storage  storage.BlobStore

	// Repository layer
	PersonRepo person.Repository
	WorkRepo   work.Repository

	// Service layer
	PersonService person.Service
	WorkService   work.Service
	SearchService search.Service

	// Handler layer
	PersonHandler *personHandler.PersonHandler
	WorkHandler   *workHandler.WorkHandler
	SearchHandler *searchHandler.SearchHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (document store, blob store, cache)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: DOCUMENT STORE
	// ========================================
	if err := c.initDocstore(); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: BLOB STORE
	// ========================================
	if err := c.initStorage(); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 4: CACHE
	// ========================================
	// Redis failure không critical, app chạy tiếp không cache.
	c.initCache()

	// ========================================
	// STEP 5-7: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.PersonRepo = personRepo.NewDocstoreRepository(c.Docstore, c.Cache)
	c.WorkRepo = workRepo.NewDocstoreRepository(c.Docstore, c.Cache)

	c.PersonService = personService.NewPersonService(c.PersonRepo, c.Storage)
	c.WorkService = workService.NewWorkService(c.WorkRepo, c.Storage)
	c.SearchService = search.NewSearchService(c.PersonService, c.WorkService)

	c.PersonHandler = personHandler.NewPersonHandler(c.PersonService, cfg.Upload.MaxSizeMB)
	c.WorkHandler = workHandler.NewWorkHandler(c.WorkService, cfg.Upload.MaxSizeMB)
	c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService, c.PersonService, c.WorkService)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// initDocstore chọn backend theo DOCSTORE_DRIVER và đảm bảo collections tồn tại.
func (c *Container) initDocstore() error {
	switch c.Config.Docstore.Driver {
	case "memory":
		log.Println("🗄️  Using in-memory document store")
		c.Docstore = docstore.NewMemoryStore()

	default: // postgres, đã validate trong config
		log.Println("🗄️  Connecting to PostgreSQL...")

		db := database.NewPostgresDB(
			c.Config.DatabaseConnString(),
			c.Config.Database.MaxConns,
			c.Config.Database.MinConns,
		)

		ctx, cancel := context.WithTimeout(context.Background(), config.ConnectTimeout)
		defer cancel()

		if err := db.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.HealthCheck(ctx); err != nil {
			return fmt.Errorf("database health check failed: %w", err)
		}

		c.DB = db
		c.Docstore = docstore.NewPostgresStore(db.Pool)
		log.Println("✅ Database connected")
	}

	ctx := context.Background()
	for _, collection := range []string{"people", "works"} {
		if err := c.Docstore.EnsureCollection(ctx, collection); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", collection, err)
		}
	}
	return nil
}

// initStorage chọn blob store theo STORAGE_DRIVER.
func (c *Container) initStorage() error {
	switch c.Config.Storage.Driver {
	case "minio":
		log.Println("📦 Connecting to MinIO...")
		store, err := storage.NewMinIOStorage(c.Config.MinIO)
		if err != nil {
			return fmt.Errorf("failed to init minio storage: %w", err)
		}
		c.Storage = store
		log.Println("✅ MinIO connected")

	default: // local
		store, err := storage.NewDiskStorage(c.Config.Storage.UploadDir, c.Config.Storage.BaseURL)
		if err != nil {
			return fmt.Errorf("failed to init disk storage: %w", err)
		}
		c.Storage = store
		log.Printf("📦 Using local disk storage (%s)", c.Config.Storage.UploadDir)
	}
	return nil
}

func (c *Container) initCache() {
	if !c.Config.Redis.Enabled {
		log.Println("🔴 Redis disabled, distinct listings hit the store directly")
		return
	}

	log.Println("🔴 Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache
}

// Cleanup đóng các external connections. Gọi khi shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			}
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Println("👋 Container cleaned up")
}
