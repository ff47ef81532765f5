// This file contains the data-source fetch command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and process documents from the configured data sources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, logger, err := buildEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		fmt.Println("Fetching from data sources (this can take a while)...")
		resp, err := client.FetchSources(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(resp.Message)
		return nil
	},
}
