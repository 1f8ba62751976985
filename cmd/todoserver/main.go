package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bilingual-todo/internal/config"
	"bilingual-todo/internal/repository"
	"bilingual-todo/internal/server"
	"bilingual-todo/internal/service"
	"bilingual-todo/internal/store"
	"bilingual-todo/internal/translate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalw("open database", "error", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	repo := repository.NewTaskRepository(db)
	taskStore := store.New(repo, logger)

	// The coordinator subscribes before hydration, so a language gap in
	// the restored list is picked up on boot.
	relayURL := fmt.Sprintf("http://127.0.0.1:%s/api/translate", cfg.ServerPort)
	translator := translate.NewClient(relayURL, cfg.TranslateTimeout())
	coordinator := service.NewTranslateCoordinator(taskStore, translator, logger, cfg.TranslateTimeout())
	go coordinator.Run(ctx)

	srv := server.New(taskStore, repo, logger, server.RelayConfig{
		UpstreamURL: cfg.TranslationAPIURL,
		APIKey:      cfg.TranslationAPIKey,
		Timeout:     cfg.TranslateTimeout(),
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: srv.Handler(),
	}

	// Bind before hydrating: the coordinator's boot-time sweep calls the
	// in-process relay, so the listener has to be accepting by then.
	listener, err := net.Listen("tcp", httpSrv.Addr)
	if err != nil {
		logger.Fatalw("listen", "addr", httpSrv.Addr, "error", err)
	}

	go func() {
		logger.Infow("server started", "port", cfg.ServerPort)
		if err := httpSrv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server stopped", "error", err)
		}
	}()

	tasks, err := repo.Load(ctx)
	if err != nil {
		logger.Warnw("load tasks, starting empty", "error", err)
	}
	taskStore.Dispatch(ctx, store.ReplaceAll{Tasks: tasks})

	scheduler := service.NewSchedulerService(time.Local)
	if interval := cfg.ReportInterval(); interval > 0 {
		reports := service.NewReportService(taskStore, logger)
		if _, err := scheduler.ScheduleInterval(interval, reports.LogSummary); err != nil {
			logger.Fatalw("schedule reports", "error", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warnw("shutdown", "error", err)
	}
	logger.Infow("shutdown complete")
}
