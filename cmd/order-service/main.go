package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prabindersinghh/leorit-order-service/internal/app/background"
	"github.com/prabindersinghh/leorit-order-service/internal/app/setup"
	"github.com/prabindersinghh/leorit-order-service/internal/config"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/grpcapi"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/handlers"
	"github.com/prabindersinghh/leorit-order-service/internal/delivery/http/router"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	zlog, err := logger.New(cfg.LogConfig.LogLevel, cfg.LogConfig.LogFormat)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	deps, err := setup.InitializeDependencies(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to init dependencies", zap.Error(err))
	}
	defer deps.Close()

	uc := setup.InitializeUseCases(deps)

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := router.SetupRouter(router.Handlers{
		Order:  handlers.NewOrderHandler(uc.OrderUsecase),
		QC:     handlers.NewQCHandler(uc.QCUsecase),
		Escrow: handlers.NewEscrowHandler(uc.PaymentUsecase),
	}, router.Options{
		JWTSecret: cfg.Auth.JWTSecret,
		Gatherer:  deps.Registry,
		Log:       zlog,
	})
	httpServer := &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	grpcServer := grpcapi.NewServer(zlog)
	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		zlog.Fatal("failed to listen", zap.Error(err))
	}

	tasks := background.NewBackgroundTasks(uc.OrderUsecase, uc.PaymentUsecase, cfg.Background.EscrowSweepInterval, zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		zlog.Info("HTTP server started", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return tasks.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		grpcServer.Shutdown()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		zlog.Error("order service stopped with error", zap.Error(err))
		return
	}
	zlog.Info("order service stopped")
}
