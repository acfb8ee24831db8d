package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"shopservice/internal/app/config"
	httpapi "shopservice/internal/app/http"
	"shopservice/internal/app/http/handler"
	"shopservice/internal/domain"
	"shopservice/internal/domain/member"
	"shopservice/internal/domain/order"
	"shopservice/internal/domain/team"
	"shopservice/internal/infrastructure/async"
	"shopservice/internal/infrastructure/db/sqlrepo"
	"shopservice/internal/infrastructure/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogEnv)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sqlrepo.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	uow := sqlrepo.NewTxManager(db)

	eventBus := async.NewAsyncEventBus(ctx, cfg.EventWorkers, log)
	defer eventBus.Close()

	teamRepo := sqlrepo.NewTeamRepository(db)
	memberRepo := sqlrepo.NewMemberRepository(db)
	orderRepo := sqlrepo.NewOrderRepository(db)

	teamSvc := team.NewService(uow, teamRepo, eventBus)
	memberSvc := member.NewService(uow, memberRepo, teamRepo, eventBus)
	orderSvc := order.NewService(uow, orderRepo, memberRepo, eventBus, domain.SystemClock{})

	h := handler.New(memberSvc, teamSvc, orderSvc, log)
	router := httpapi.NewRouter(h, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("driver", cfg.DatabaseDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
