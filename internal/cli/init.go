// This file contains the config initialization command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"policychat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := config.DefaultDir()
		if err != nil {
			return err
		}

		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists at %s", path)
		}

		cfg := config.DefaultConfig()
		if serverURL != "" {
			cfg.Server.BaseURL = serverURL
		}
		if err := config.WriteConfig(dir, cfg); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}
