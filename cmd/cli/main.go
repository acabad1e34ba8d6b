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

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogJSON)

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	a.RunCLI(ctx, os.Stdin, os.Stdout)
}
