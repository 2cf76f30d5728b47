package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"poke_explorer/internal/client"
	"poke_explorer/internal/logger"

	"github.com/spf13/pflag"
)

func main() {
	log := logger.Get(logger.WarnLevel)

	cfg, err := client.LoadConfig(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalw("invalid arguments", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(
		client.NewAPIClient(cfg.ServerURL, cfg.Timeout),
		client.NewFileStore(cfg.SessionPath),
		os.Stdin,
		os.Stdout,
	)
	app.Run(ctx)
}
