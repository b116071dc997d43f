package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/appdotbuilder/hacker-chat/config"
	chanRepository "github.com/appdotbuilder/hacker-chat/internal/channel/repository"
	chanUsecase "github.com/appdotbuilder/hacker-chat/internal/channel/usecase"
	dmRepository "github.com/appdotbuilder/hacker-chat/internal/dm/repository"
	dmUsecase "github.com/appdotbuilder/hacker-chat/internal/dm/usecase"
	msgRepository "github.com/appdotbuilder/hacker-chat/internal/message/repository"
	msgUsecase "github.com/appdotbuilder/hacker-chat/internal/message/usecase"
	"github.com/appdotbuilder/hacker-chat/internal/server"
	userRepository "github.com/appdotbuilder/hacker-chat/internal/user/repository"
	userUsecase "github.com/appdotbuilder/hacker-chat/internal/user/usecase"
	"github.com/appdotbuilder/hacker-chat/pkg/logger"
	"github.com/appdotbuilder/hacker-chat/pkg/unfurl"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	v, err := config.LoadConfig("config")
	if err != nil {
		return exitConfig, err
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		return exitConfig, err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return exitConfig, err
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	db := bun.NewDB(sql.OpenDB(connector), pgdialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		return exitRuntime, fmt.Errorf("database unreachable: %w", err)
	}
	if err := createSchema(ctx, db); err != nil {
		return exitRuntime, fmt.Errorf("schema setup failed: %w", err)
	}

	userRepo := userRepository.NewUserRepository(db, log)
	chanRepo := chanRepository.NewChannelRepository(db, log)
	msgRepo := msgRepository.NewMessageRepository(db, log)
	dmRepo := dmRepository.NewDMRepository(db, log)

	userUC := userUsecase.NewUserUsecase(userRepo, log, cfg)
	chanUC := chanUsecase.NewChannelUsecase(chanRepo, userRepo, log)
	msgUC := msgUsecase.NewMessageUsecase(msgRepo, chanUC, unfurl.NewHTTPUnfurler(cfg), log)
	dmUC := dmUsecase.NewDMUsecase(dmRepo, chanRepo, userRepo, log)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: server.New(cfg, log, userUC, chanUC, msgUC, dmUC).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return exitRuntime, err
		}
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return exitRuntime, err
		}
	}

	return exitOK, nil
}
