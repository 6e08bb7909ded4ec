//go:build !cli
// +build !cli

package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/api"
	_ "storefront.GO/api/banner"
	_ "storefront.GO/api/campaign"
	_ "storefront.GO/api/cart"
	_ "storefront.GO/api/catalog"
	graphqlApi "storefront.GO/api/graphql"
	_ "storefront.GO/api/profit"
	_ "storefront.GO/api/staff"
	_ "storefront.GO/api/support"
	"storefront.GO/config"
	"storefront.GO/cron/jobs"
	"storefront.GO/model/entity"
	catalogRepo "storefront.GO/model/repository/catalog"
	cartService "storefront.GO/service/cart"
	catalogService "storefront.GO/service/catalog"
)

func getAuthMiddleware() echo.MiddlewareFunc {
	skipPaths := config.GetAuthSkipperPaths()
	skipper := func(c echo.Context) bool {
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
	authType := os.Getenv("AUTH_TYPE")
	switch authType {
	case "key":
		apiKey := os.Getenv("API_KEY")
		return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			Validator: func(key string, c echo.Context) (bool, error) {
				return key == apiKey, nil
			},
			Skipper: skipper,
		})
	default:
		return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
			Validator: func(username, password string, c echo.Context) (bool, error) {
				return username == os.Getenv("API_USER") && password == os.Getenv("API_PASS"), nil
			},
			Skipper: skipper,
		})
	}
}

func main() {
	config.LoadEnv()
	config.LoadAppConfig()
	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured, cart persistence falls back to in-process storage."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, cart persistence falls back to in-process storage."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// Check DB connection
	sqldb, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get DB instance: %v", err)
	}
	if err := sqldb.Ping(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	log.Println("Database connection successful.")

	if err := db.AutoMigrate(
		&entity.Campaign{},
		&entity.Banner{},
		&entity.SupportTicket{},
		&entity.FollowUpCall{},
		&entity.StaffUser{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	repo, err := catalogRepo.NewCatalogRepository(db)
	if err != nil {
		log.Fatalf("catalog repository: %v", err)
	}
	store := catalogService.NewStore(repo)
	if err := store.Load(); err != nil {
		log.Printf("initial catalog load failed: %v", err)
	}

	var cartStorage cartService.Storage
	if config.RedisClient != nil {
		cartStorage = cartService.NewRedisStorage(config.RedisClient, config.AppConfig.CartKeyPrefix)
	} else {
		cartStorage = cartService.NewMemoryStorage()
	}
	carts := cartService.NewService(cartStorage, store)

	jobs.Init(store, db)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	apiGroup := e.Group("/api")
	apiGroup.Use(getAuthMiddleware())

	api.ApplyModules(apiGroup, &api.Deps{DB: db, Catalog: store, Cart: carts})
	graphqlApi.RegisterGraphQLRoutes(e, store)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, echo.Map{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
