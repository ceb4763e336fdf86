package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"multimedia-api/internal/config"
	infraCache "multimedia-api/internal/infrastructure/cache"
	"multimedia-api/internal/infrastructure/database"
	"multimedia-api/internal/infrastructure/memstore"
	"multimedia-api/internal/shared/access"
	"multimedia-api/pkg/cache"
	"multimedia-api/pkg/logger"

	// Author domain
	authorHandler "multimedia-api/internal/domains/author/handler"
	authorRepo "multimedia-api/internal/domains/author/repository"
	authorService "multimedia-api/internal/domains/author/service"

	// Media domain (books, cds, dvds)
	mediaHandler "multimedia-api/internal/domains/media/handler"
	mediaModel "multimedia-api/internal/domains/media/model"
	mediaRepo "multimedia-api/internal/domains/media/repository"
	mediaService "multimedia-api/internal/domains/media/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Lifecycle: Singleton, sở hữu bởi container, đóng trong Cleanup()

	Config *config.Config
	DB     *database.PostgresDB // nil khi STORE_DRIVER=memory
	Memory *memstore.Store      // nil khi STORE_DRIVER=postgres
	Cache  cache.Cache          // Redis hoặc Nop
	Gate   *access.Gate

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	AuthorRepo authorRepo.Repository
	MediaRepos []mediaRepo.Repository // một repo cho mỗi Kind

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	AuthorService authorService.ServiceInterface
	MediaServices []mediaService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	AuthorHandler *authorHandler.AuthorHandler
	MediaHandlers []*mediaHandler.MediaHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer load config từ env rồi build dependency graph
func NewContainer() (*Container, error) {
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	return NewContainerWithConfig(cfg)
}

// NewContainerWithConfig build dependency graph từ config có sẵn.
//
// QUAN TRỌNG: Thứ tự initialization:
// 1. Infrastructure (Store, Cache) - phụ thuộc Config
// 2. Repositories - phụ thuộc Infrastructure
// 3. Services - phụ thuộc Repositories
// 4. Handlers - phụ thuộc Services
//
// Store không kết nối được -> trả lỗi, process không start (không chạy nửa vời)
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE STORE
	// ========================================
	if err := c.initStore(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 2: INITIALIZE CACHE
	// ========================================
	// Redis failure không critical - fallback sang Nop
	c.initCache()

	c.Gate = access.NewGate(access.NewStaticVerifier(cfg.Auth.Username, cfg.Auth.Password))

	// ========================================
	// STEP 3-5: REPOSITORIES -> SERVICES -> HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	cacheMode := "redis"
	if _, ok := c.Cache.(cache.Nop); ok {
		cacheMode = "disabled"
	}
	logger.Info("DI Container initialized", map[string]interface{}{
		"store": cfg.Store.Driver,
		"cache": cacheMode,
		"media": len(c.MediaHandlers),
	})
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initStore() error {
	if c.Config.Store.Driver == config.StoreDriverMemory {
		log.Println("🧠 Using in-memory store")
		c.Memory = memstore.New()
		return nil
	}

	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	c.DB = db

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	log.Println("✅ Database connected")
	return nil
}

func (c *Container) initCache() {
	c.Cache = cache.Nop{}
	if !c.Config.Redis.Enabled {
		log.Println("⚪ Redis disabled, author cache off")
		return
	}

	log.Println("🔴 Connecting to Redis...")
	rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		_ = rc.Close()
		return
	}

	c.Cache = rc
	log.Println("✅ Redis connected")

	if err := authorRepo.FlushCache(ctx, rc); err != nil {
		log.Printf("⚠️  Failed to flush author cache: %v", err)
	}
}

// initRepositories: chọn backend theo driver, author repo luôn bọc cache
func (c *Container) initRepositories() {
	var base authorRepo.Repository
	if c.Memory != nil {
		base = c.Memory.Authors()
	} else {
		base = authorRepo.NewPostgresRepository(c.DB.Pool)
	}
	c.AuthorRepo = authorRepo.NewCachedRepository(base, c.Cache, c.Config.Cache.TTL)

	c.MediaRepos = c.MediaRepos[:0]
	for _, kind := range mediaModel.Kinds() {
		if c.Memory != nil {
			c.MediaRepos = append(c.MediaRepos, c.Memory.Media(kind))
		} else {
			c.MediaRepos = append(c.MediaRepos, mediaRepo.NewPostgresRepository(c.DB.Pool, kind))
		}
	}
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)

	c.MediaServices = c.MediaServices[:0]
	for _, repo := range c.MediaRepos {
		c.MediaServices = append(c.MediaServices, mediaService.NewMediaService(repo))
	}
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)

	c.MediaHandlers = c.MediaHandlers[:0]
	for _, svc := range c.MediaServices {
		c.MediaHandlers = append(c.MediaHandlers, mediaHandler.NewMediaHandler(svc))
	}
}

// ========================================
// HEALTH & CLEANUP
// ========================================

// HealthCheck trả trạng thái từng component; error != nil nếu store không dùng được
func (c *Container) HealthCheck(ctx context.Context) (map[string]string, error) {
	status := map[string]string{"store": "ok", "cache": "ok"}

	var storeErr error
	if c.DB != nil {
		storeErr = c.DB.HealthCheck(ctx)
	} else if c.Memory != nil {
		storeErr = c.Memory.Ping(ctx)
	}
	if storeErr != nil {
		status["store"] = storeErr.Error()
	}

	if _, ok := c.Cache.(cache.Nop); ok {
		status["cache"] = "disabled"
	} else if err := c.Cache.Ping(ctx); err != nil {
		status["cache"] = err.Error()
	}

	return status, storeErr
}

// Cleanup dọn dẹp resources khi shutdown. Gọi nhiều lần vẫn an toàn.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close Redis: %v", err)
		} else {
			log.Println("✅ Redis connections closed")
		}
		c.Cache = cache.Nop{}
	}

	log.Println("✅ Container cleanup completed")
}
