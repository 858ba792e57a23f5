package main

import (
	"fmt"
	"log"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/configs"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/middlewares"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCategories(); err != nil {
		log.Fatalf("seed categories failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
