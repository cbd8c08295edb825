package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/allisson/encrypted-fields/cmd/app/commands"
	"github.com/allisson/encrypted-fields/internal/app"
	"github.com/allisson/encrypted-fields/internal/config"
	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "migrate",
			Usage: "Run database migrations",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(ctx, container)

				return commands.RunMigrations(container.Logger(), cfg.DBDriver, cfg.DBConnectionString)
			},
		},
		{
			Name:  "create-master-key",
			Usage: "Generate a new master key for the configured cipher",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "KMS key URI used to encrypt the new key (e.g., base64key://, hashivault://...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(ctx, container)

				alg, err := cryptoDomain.ParseAlgorithm(cfg.Cipher)
				if err != nil {
					return err
				}
				// The configured MASTER_KEY is not needed to mint a new one.
				generator, err := cryptoService.NewCipherEngine(container.AEADManager(), alg, "")
				if err != nil {
					return err
				}

				return commands.RunCreateMasterKey(
					ctx,
					generator,
					container.KMSService(),
					container.Logger(),
					cmd.Root().Writer,
					cmd.String("kms-key-uri"),
				)
			},
		},
		{
			Name:  "rotate-keys",
			Usage: "Re-encrypt every managed record and record key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "database-key",
					Aliases: []string{"k"},
					Usage:   "Hex master key the stored data is currently encrypted with",
				},
				&cli.StringFlag{
					Name:    "database-key-file",
					Aliases: []string{"f"},
					Usage:   "Path to a file holding the database key",
				},
				&cli.BoolFlag{
					Name:    "generate-new-key",
					Aliases: []string{"g"},
					Usage:   "Generate a new master key and re-encrypt under it",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(ctx, container)

				rotator, err := container.Rotator()
				if err != nil {
					return err
				}

				return commands.RunRotateKeys(
					ctx,
					rotator,
					container.Logger(),
					cmd.Root().Writer,
					commands.RotateKeysOptions{
						DatabaseKey:     cmd.String("database-key"),
						DatabaseKeyFile: cmd.String("database-key-file"),
						GenerateNewKey:  cmd.Bool("generate-new-key"),
					},
				)
			},
		},
		{
			Name:  "verify",
			Usage: "Decrypt every managed record with the current configuration",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: "text",
					Usage: "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(ctx, container)

				verifier, err := container.Verifier()
				if err != nil {
					return err
				}

				return commands.RunVerify(
					ctx,
					verifier,
					container.Logger(),
					cmd.Root().Writer,
					cmd.String("format"),
				)
			},
		},
	}
}

// loadConfig loads and validates the configuration for commands that touch the database.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
