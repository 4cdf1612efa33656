package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/projlog/internal"
	"github.com/starford/projlog/internal/apperr"
	"github.com/starford/projlog/internal/history"
	pkgconfig "github.com/starford/projlog/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	found, err := pkgconfig.LoadOptional(configPath, cfg)
	if err != nil {
		return nil, apperr.Config(fmt.Errorf("failed to parse config: %w", err))
	}
	if !found {
		slog.Debug("config file not found, using defaults", slog.String("path", configPath))
	}
	return cfg, nil
}

func options(cmd *cli.Command) ([]internal.Option, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	opts := []internal.Option{internal.WithConfig(cfg)}
	if cmd.Bool("no-history") {
		opts = append(opts, internal.WithHistory(history.Disabled))
	}
	return opts, nil
}

func build(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	if _, err := internal.Build(ctx, opts...); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	return nil
}

func list(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	if err := internal.List(ctx, opts...); err != nil {
		return fmt.Errorf("list: %w", err)
	}
	return nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.IsSet("port") {
		cfg.Preview.Port = int(cmd.Int("port"))
		if err := cfg.Preview.Validate(); err != nil {
			return apperr.Config(err)
		}
	}
	opts := []internal.Option{internal.WithConfig(cfg)}
	if cmd.Bool("no-history") {
		opts = append(opts, internal.WithHistory(history.Disabled))
	}
	if err := internal.Serve(ctx, opts...); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:   "projlog",
		Usage:  "Build a single-page project log from a directory of TOML records",
		Action: build,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "projlog.yaml",
				Value:       "projlog.yaml",
				Sources:     cli.EnvVars("PROJLOG_CONFIG"),
			},
			&cli.BoolFlag{
				Name:    "no-history",
				Usage:   "Skip version-control lookups",
				Sources: cli.EnvVars("PROJLOG_NO_HISTORY"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Render the project page",
				Action: build,
			},
			{
				Name:   "list",
				Usage:  "Print projects in page order",
				Action: list,
			},
			{
				Name:   "serve",
				Usage:  "Build the page and serve it locally",
				Action: serve,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "Port to listen on (overrides preview.port)",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(apperr.Code(err))
	}
}
