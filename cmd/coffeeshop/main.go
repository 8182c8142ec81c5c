// @title Coffee Shop API
// @version 1.0
// @description Menu and order management for a small coffee shop.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "coffeeshop/docs"
	"coffeeshop/internal/config"
	"coffeeshop/internal/db"
	"coffeeshop/internal/httpx"
	"coffeeshop/internal/menu"
	"coffeeshop/internal/order"
	"coffeeshop/web"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("connect database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		log.Error("apply migrations", "error", err)
		os.Exit(1)
	}
	if cfg.SeedMenu {
		if err := db.SeedMenu(ctx, pool); err != nil {
			log.Error("seed menu", "error", err)
			os.Exit(1)
		}
	}

	menuHandler := menu.NewHandler(menu.NewPGRepo(pool), log)
	orderHandler := order.NewHandler(order.NewPGRepo(pool), log)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log))

	menuHandler.Register(r)
	orderHandler.Register(r)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	ui := http.FS(web.FS())
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", ui)
	})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Error("shutdown", "error", err)
	}
}
