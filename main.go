package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodserver/configs"
	"foodserver/middlewares"
	"foodserver/pkg/cache"
	"foodserver/queue"
	"foodserver/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer func() {
		if err := configs.Close(db); err != nil {
			log.Println("close database:", err)
		}
	}()

	// migrate
	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(db); err != nil {
			log.Fatalf("seed demo catalog failed: %v", err)
		}
	}

	// optional side channels; nil when unconfigured
	store := cache.New(cfg.RedisAddr, cfg.RedisDB, cfg.CacheTTL)
	defer store.Close()
	events := queue.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer events.Close()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Deadline(cfg.RequestTimeout))

	routes.RegisterRoutes(r, db, cfg, store, events)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Println("Restaurant api running at", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("shutdown:", err)
	}
}
