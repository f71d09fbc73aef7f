package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/console"
	"github.com/rocketscienceinc/tictactoe-solo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/pkg/logger"
)

// main - plays tic-tac-toe against the engine in the terminal.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}

	conf := config.MustLoad(configPath)

	log := logger.New(conf.LogLevel, os.Stderr)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionRepo := repository.NewMemorySessionRepository(conf.SessionTTL)
	gamePlay := service.NewGamePlayService(log, sessionRepo, service.NewBotService(conf.Bot.ThinkDelay))

	if err := console.New(log, gamePlay, os.Stdin, os.Stdout).Run(ctx); err != nil {
		panic(fmt.Errorf("console run failed: %w", err))
	}
}
