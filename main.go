package main

import (
	"fmt"
	"os"

	app "github.com/rocketscienceinc/tictactoe-solo/internal"
	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/pkg/logger"
)

const defaultConfigPath = "config.yml"

// main - starts the REST and WebSocket servers over one gameplay service.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := config.MustLoad(configPath())
	log := logger.New(conf.LogLevel, os.Stdout)

	log.Info("configuration loaded", "storage", conf.Storage, "httpPort", conf.HTTPPort, "socketPort", conf.SocketPort)

	if err := app.RunApp(log, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// configPath - CONFIG_PATH overrides ./config.yml.
func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	return defaultConfigPath
}
