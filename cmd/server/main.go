package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/jsonresponse/api/handler"
	"github.com/fastygo/jsonresponse/domain"
	"github.com/fastygo/jsonresponse/internal/config"
	"github.com/fastygo/jsonresponse/internal/infrastructure/boltdb"
	"github.com/fastygo/jsonresponse/internal/infrastructure/monitor"
	"github.com/fastygo/jsonresponse/internal/middleware"
	"github.com/fastygo/jsonresponse/internal/router"
	"github.com/fastygo/jsonresponse/internal/services/lifecycle"
	"github.com/fastygo/jsonresponse/pkg/httpcontext"
	"github.com/fastygo/jsonresponse/pkg/logger"
	boltRepo "github.com/fastygo/jsonresponse/repository/bolt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	store, err := boltdb.Open(cfg.Catalog.Path, boltRepo.UsersBucket)
	if err != nil {
		zapLogger.Fatal("failed to open catalog store", zap.Error(err))
	}
	manager.Register("catalog", func(ctx context.Context) error {
		return store.Close()
	})

	catalog := boltRepo.NewCatalogRepository(store)
	if cfg.Catalog.Seed {
		if err := seed(appCtx, catalog); err != nil {
			zapLogger.Fatal("failed to seed catalog", zap.Error(err))
		}
	}

	mon := monitor.New(store, boltRepo.UsersBucket, boltRepo.BooksBucket, cfg.Catalog.MonitorInterval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Catalog:  apiHandler.NewCatalogHandler(catalog, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
		Fallback: apiHandler.NewFallbackHandler(zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, cfg.JWT.Issuer, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// seed fills an empty catalog with a couple of demo users and books.
func seed(ctx context.Context, catalog *boltRepo.CatalogRepository) error {
	users, err := catalog.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}
	for _, name := range []string{"Alice", "John"} {
		if err := catalog.CreateUser(ctx, &domain.User{Name: name}); err != nil {
			return err
		}
	}
	return catalog.PutBooks(
		domain.Book{Title: "The Go Programming Language", Author: "Alan Donovan", Year: 2015},
		domain.Book{Title: "Concurrency in Go", Author: "Katherine Cox-Buday", Year: 2017},
	)
}
