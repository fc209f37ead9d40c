package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MediaVault-Admin/MediaVault-Admin/internal/backup"
	"github.com/MediaVault-Admin/MediaVault-Admin/internal/daemon"
)

const (
	formatSQL  = "sql"
	formatJSON = "json"
)

func init() { //nolint: gochecknoinits
	backupExportCmd.Flags().StringVar(&exportFormat, "format", formatJSON, "Export format, sql or json")
	backupExportCmd.Flags().StringVar(&exportOut, "out", "", "Output file, stdout when empty")

	backupCmd.AddCommand(backupExportCmd, backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

var (
	exportFormat string
	exportOut    string

	backupCmd = &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the database",
	}

	backupExportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the database as a SQL script or a JSON snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := daemon.OpenDB(&cfg)
			if err != nil {
				return err
			}

			svc := backup.NewService(db)

			var body []byte

			switch exportFormat {
			case formatSQL:
				body, err = svc.ProduceScript(cmd.Context())
			case formatJSON:
				var snap *backup.Snapshot
				if snap, err = svc.ProduceSnapshot(cmd.Context()); err == nil {
					body, err = snap.Encode()
				}
			default:
				return fmt.Errorf("unknown format %q, use %s or %s", exportFormat, formatSQL, formatJSON)
			}

			if err != nil {
				return err
			}

			if exportOut == "" {
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			if err = os.WriteFile(exportOut, body, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", exportOut, err)
			}

			log.Info().Str("file", exportOut).Int("bytes", len(body)).Msg("database exported")

			return nil
		},
	}

	backupRestoreCmd = &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore the database from a JSON snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			db, err := daemon.OpenDB(&cfg)
			if err != nil {
				return err
			}

			restored, err := backup.NewService(db).Restore(cmd.Context(), filepath.Base(args[0]), body)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Database restored successfully, %d records restored\n", restored)

			return err
		},
	}
)
