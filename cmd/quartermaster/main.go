package main

//   __ _  _   _   __ _  _ __  | |_   ___  _ __  _ __ ___    __ _  ___ | |_   ___  _ __
//  / _' || | | | / _' || '__| | __| / _ \| '__|| '_ ' _ \  / _' |/ __|| __| / _ \| '__|
// | (_| || |_| || (_| || |    | |_ |  __/| |   | | | | | || (_| |\__ \| |_ |  __/| |
//  \__, | \__,_| \__,_||_|     \__| \___||_|   |_| |_| |_| \__,_||___/ \__| \___||_|
//     |_|  every  hold  inventoried  and  every  hand  on  the  manifest

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"grimworks/quartermaster/internal/access"
	"grimworks/quartermaster/internal/config"
	"grimworks/quartermaster/internal/core"
	"grimworks/quartermaster/internal/extension"
	"grimworks/quartermaster/internal/gateway"
)

const version = "0.3"

func main() {
	fmt.Printf("%s\n", gateway.GetBanner(version))

	cmd := &cli.Command{
		Name:    "quartermaster",
		Usage:   "chat-side help desk for the game server",
		Version: version,
		Flags:   config.GetFlags(),
		Action:  runGateway,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		// Print to stderr first in case logger isn't initialized
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		zap.S().Fatal(err)
	}
}

func runGateway(ctx context.Context, c *cli.Command) error {
	cfg := config.NewConfiguration(c)
	core.InitLogger(cfg.Bot.Verbose)
	defer zap.L().Sync() // Flushes buffer, if any

	if cfg.Bot.Verbose {
		cfg.PrintConfig()
	}

	table, err := access.ParseLevels(cfg.Access.Levels)
	if err != nil {
		return fmt.Errorf("parsing access levels: %w", err)
	}
	ext := extension.NewRegistry()

	if cfg.Access.ManifestDir != "" {
		n, err := extension.LoadManifests(cfg.Access.ManifestDir, table, ext)
		if err != nil {
			return fmt.Errorf("loading extension manifests: %w", err)
		}
		zap.S().Infow("Loaded extension manifests", "dir", cfg.Access.ManifestDir, "commands", n)
	}

	g := gateway.New(cfg, table, ext)
	return g.Run(ctx)
}
