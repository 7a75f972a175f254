package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/RANGASWAMY-MK/my-space/internal/buildinfo"
	"github.com/RANGASWAMY-MK/my-space/internal/client/cli"
	"github.com/RANGASWAMY-MK/my-space/internal/client/config"
	"github.com/RANGASWAMY-MK/my-space/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
