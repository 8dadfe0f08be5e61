package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	_ "go.uber.org/automaxprocs"

	"fittrack/internal/core/auth"
	"fittrack/internal/core/cache"
	"fittrack/internal/core/config"
	"fittrack/internal/core/database"
	"fittrack/internal/core/logger"
	"fittrack/internal/core/server"
	"fittrack/internal/domain"
	"fittrack/internal/repo"
	"fittrack/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load("")

	log, sync := logger.New(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate{
		Enable:     cfg.Log.ErrorLog.Filename != "",
		Filename:   cfg.Log.ErrorLog.Filename,
		MaxSizeMB:  cfg.Log.ErrorLog.MaxSizeMB,
		MaxBackups: cfg.Log.ErrorLog.MaxBackups,
		MaxAgeDays: cfg.Log.ErrorLog.MaxAgeDays,
		Compress:   cfg.Log.ErrorLog.Compress,
	})
	defer sync()

	db, err := database.New(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(
			&domain.User{},
			&domain.Program{},
			&domain.Exercise{},
			&domain.CompletedExercise{},
		); err != nil {
			log.Fatal("auto migrate failed", zap.Error(err))
		}
	}

	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	engine := router.NewAPIEngine(router.Deps{
		Log:       log,
		JWT:       jwter,
		Users:     repo.NewUserRepo(db),
		Programs:  repo.NewProgramRepo(db),
		Exercises: repo.NewExerciseRepo(db),
		Completed: repo.NewCompletedExerciseRepo(db),
		Cache:     c,
	})

	srv := server.Build(
		server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port),
		engine,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	go func() {
		log.Info("http server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("bye")
}
