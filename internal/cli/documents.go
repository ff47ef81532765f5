// This file contains the documents listing command.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "List documents in the knowledge base",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, logger, err := buildEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		docs, err := client.Documents(context.Background())
		if err != nil {
			return err
		}

		if docs.Total == 0 {
			fmt.Println("No documents processed yet.")
			return nil
		}

		for _, doc := range docs.Documents {
			fmt.Printf("%s  (%d chunks, %s)\n", doc.Filename, doc.Chunks, doc.FileType)
		}
		fmt.Printf("\n%d document(s) total\n", docs.Total)
		return nil
	},
}
