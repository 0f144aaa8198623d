package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/careerhive/jobmatch/internal/config"
	"github.com/careerhive/jobmatch/internal/db"
	"github.com/careerhive/jobmatch/internal/handler"
	"github.com/careerhive/jobmatch/internal/handler/server"
	"github.com/careerhive/jobmatch/internal/logger"
	"github.com/careerhive/jobmatch/internal/repository/postgres"
	"github.com/careerhive/jobmatch/internal/service"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zapLogger.Sync()

	database := db.MustLoad(cfg)
	zapLogger.Info("connected to database")
	defer database.Close()

	personRepo := postgres.NewPersonRepository(database)
	businessRepo := postgres.NewBusinessRepository(database)
	jobRepo := postgres.NewJobRepository(database)
	taskRepo := postgres.NewTaskRepository(database)

	accountService := service.NewAccountService(personRepo, businessRepo)
	jobService := service.NewJobService(jobRepo, businessRepo, personRepo)
	matchingService := service.NewMatchingService(jobRepo, personRepo)
	applicationService := service.NewApplicationService(jobRepo, personRepo)
	teamService := service.NewTeamService(jobRepo, personRepo)
	taskService := service.NewTaskService(taskRepo, businessRepo)

	h := handler.NewHandler(
		accountService,
		jobService,
		matchingService,
		applicationService,
		teamService,
		taskService,
	)
	srv := server.NewServer(h, cfg.Server.Addr, zapLogger)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server forced to shutdown", zap.Error(err))
	}
}
