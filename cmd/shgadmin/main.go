// Command shgadmin runs database migrations, seeds the location tree and
// creates portal users.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shgportal/internal/config"
	"shgportal/internal/logger"
)

var (
	cfg *config.Config
	zl  *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "shgadmin",
	Short:         "Administration tasks for the SHG portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		zl, err = logger.New(cfg.Log)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if zl != nil {
			_ = zl.Sync()
		}
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStepsCmd, migrateVersionCmd)
	seedCmd.AddCommand(seedLocationsCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(createUserCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
