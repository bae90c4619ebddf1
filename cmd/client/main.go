package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bettybooth/bettybooth/internal/buildinfo"
	"github.com/bettybooth/bettybooth/internal/client/cli"
	"github.com/bettybooth/bettybooth/internal/client/config"
	"github.com/bettybooth/bettybooth/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewDevelopmentZapLogger()
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
