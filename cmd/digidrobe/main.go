package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/digidrobe/digidrobe-go/internal/cli"
	"github.com/digidrobe/digidrobe-go/internal/config"
	"github.com/digidrobe/digidrobe-go/internal/logger"
	"github.com/digidrobe/digidrobe-go/internal/storage"
	"github.com/digidrobe/digidrobe-go/pkg/httpclient"
	"github.com/digidrobe/digidrobe-go/pkg/wardrobe"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "digidrobe: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.Init(cfg.LogLevel)
	defer logger.Close()

	store, err := storage.NewStore(cfg.SnapshotType, cfg.SnapshotPath, storage.Options{
		SnapshotTTL: cfg.SnapshotTTL,
	})
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer store.Close()

	deps := &cli.Deps{
		Cfg:   cfg,
		Log:   log,
		API:   wardrobe.New(cfg.APIBaseURL, httpclient.NewRestyHTTPClient(cfg.RequestTimeout)),
		Store: store,
		Web:   httpclient.NewRestyClient(cfg.RequestTimeout),
	}

	root := cli.NewRootCmd(deps)

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		return err
	}
	return nil
}
