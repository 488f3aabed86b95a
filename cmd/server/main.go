package main

import (
	"log"

	"github.com/KristellVM/tienda-online/internal/config"
	httpctrl "github.com/KristellVM/tienda-online/internal/controllers/http"
	"github.com/KristellVM/tienda-online/internal/infra/seed"
	"github.com/KristellVM/tienda-online/internal/infra/sqlite"
	sqliterepo "github.com/KristellVM/tienda-online/internal/repository/sqlite"
	"github.com/KristellVM/tienda-online/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	if err := seed.Run(db, cfg.SeedDir); err != nil {
		log.Fatalf("db: seed: %v", err)
	}

	users := sqliterepo.NewUserRepository(db)
	products := sqliterepo.NewProductRepository(db)
	orders := sqliterepo.NewOrderRepository(db)

	checkout := services.NewCheckoutService(orders, products)

	handler := httpctrl.NewHandler(users, products, orders, checkout)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(r)

	log.Printf("Starting tienda backend on port %s (db: %s)", cfg.Port, cfg.DBPath)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
