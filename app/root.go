// Package app implements the main application commands.
package app

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/config"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/logger"
)

const (
	// EnvPrefix prefixes the environment variables bound to flags, e.g. MEDIAVAULT_ADMIN_CONFIG_PATH.
	EnvPrefix = "MEDIAVAULT_ADMIN"

	configPathKey = "config_path"
)

var (
	cfg config.Config

	rootCmd = &cobra.Command{
		Use:   "mediavault-admin",
		Short: "MediaVault-Admin is the administration service of the MediaVault media library",
		Long: `MediaVault-Admin serves the media catalog and a session gated admin area.
It exports the whole database as a SQL script or a JSON snapshot and restores
it from a snapshot.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().String("config", "./etc/",
		"Directory holding main.toml (Env: "+EnvPrefix+"_CONFIG_PATH)")

	_ = viper.BindPFlag(configPathKey, rootCmd.PersistentFlags().Lookup("config"))

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	_ = viper.BindEnv(configPathKey)
}

// loadConfig reads the configuration and sets up the global logger.
func loadConfig() error {
	path := viper.GetString(configPathKey)
	if path != "" && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	var err error
	if cfg, err = config.ReadConfig(path); err != nil {
		return err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return err
	}

	log.Debug().Str("path", path).Msg("configuration loaded")

	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}

	return err
}
