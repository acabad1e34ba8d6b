package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/newsboard/internal/app"
	"github.com/dmitrijs2005/newsboard/internal/buildinfo"
	"github.com/dmitrijs2005/newsboard/internal/config"
	"github.com/dmitrijs2005/newsboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, true)

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	err = a.RunServer(ctx)
	if cerr := a.Close(); cerr != nil {
		logger.Error(ctx, "close storage", "error", cerr)
	}
	if err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
