// This file contains the document upload command.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document (.pdf, .docx or .txt) to the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf", ".docx", ".txt":
		default:
			return fmt.Errorf("unsupported file type %q (allowed: .pdf, .docx, .txt)", filepath.Ext(path))
		}

		_, client, logger, err := buildEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		resp, err := client.Upload(context.Background(), path)
		if err != nil {
			return err
		}

		if resp.Status != "success" {
			return fmt.Errorf("upload rejected: %s", resp.Message)
		}
		fmt.Printf("Uploaded %s: %s\n", resp.Filename, resp.Message)
		return nil
	},
}
