package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/daemon"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/db/controller/user"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty catalog with sample categories, media, services and settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, err := daemon.OpenDB(&cfg)
		if err != nil {
			return err
		}

		if err = daemon.SeedAdmin(&cfg, db); err != nil {
			return err
		}

		admin, err := user.GetByEmail(db, cfg.Admin.Email)
		if err != nil {
			return fmt.Errorf("sample media need the configured admin %s: %w", cfg.Admin.Email, err)
		}

		res, err := daemon.SeedSamples(db, admin)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories, %d media, %d services, settings created: %t\n",
			res.Categories, res.Media, res.Services, res.Settings)

		return err
	},
}
