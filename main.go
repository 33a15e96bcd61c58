package main

import (
	"fmt"
	"log"

	"github.com/PatrickBizetto/delivery-api-patrick/configs"
	"github.com/PatrickBizetto/delivery-api-patrick/middlewares"
	"github.com/PatrickBizetto/delivery-api-patrick/pkg/cache"
	"github.com/PatrickBizetto/delivery-api-patrick/routes"
	"github.com/PatrickBizetto/delivery-api-patrick/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedSampleData(); err != nil {
		log.Fatalf("seed sample data failed: %v", err)
	}

	// read cache for order lookups; in-memory when redis is not configured
	var cc cache.Cache
	if cfg.RedisAddr != "" {
		cc = cache.NewRedisCache(cfg.RedisAddr)
	} else {
		cc = cache.NewMemoryCache()
	}

	// live order feed for restaurants
	hub := ws.NewOrderFeedHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, cc, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
