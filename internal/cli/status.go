// This file contains the status command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend health and ingestion status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, logger, err := buildEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx := context.Background()

		health, err := client.HealthCheck(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Backend: %s\n", health.Status)

		status, err := client.Status(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Ingestion: %s — %s\n", status.Status, status.Message)
		fmt.Printf("Documents processed: %d\n", status.DocumentsProcessed)
		fmt.Printf("Total chunks: %d\n", status.TotalChunks)
		return nil
	},
}
