package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medonline/consultation-scheduler/internal/config"
	"github.com/medonline/consultation-scheduler/internal/routes"
	"github.com/medonline/consultation-scheduler/internal/store"
)

func main() {

	cfg := config.Load()
	st := store.NewRedisStore(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, st, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
