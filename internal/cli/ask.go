// This file contains the one-shot question command for non-interactive use.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"policychat/internal/session"
	"policychat/internal/tui"
	"policychat/internal/tui/commands"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question and print the answer with citations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, client, logger, err := buildEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		sess := session.New(session.Options{
			HistorySize: cfg.Chat.HistorySize,
			Logger:      logger,
		})

		sub, err := sess.Submit(strings.Join(args, " "))
		if err != nil {
			if errors.Is(err, session.ErrEmptyQuestion) {
				return errors.New("question cannot be empty")
			}
			return err
		}

		result := commands.Query(client, sub)().(tui.QueryResultMsg)
		sess.Resolve(result.Submission, result.Response, result.Err)

		msgs := sess.Messages()
		answer := msgs[len(msgs)-1]
		fmt.Println(answer.Content)

		for _, cit := range answer.Sources {
			line := "  source: " + cit.Filename
			if cit.PageNumber != nil {
				line += fmt.Sprintf(", p. %d", *cit.PageNumber)
			}
			if cit.RelevanceScore != nil {
				line += ", relevance " + session.FormatRelevance(*cit.RelevanceScore)
			}
			fmt.Println(line)
		}
		if answer.ConfidenceScore != nil {
			fmt.Printf("  confidence: %s\n", session.FormatRelevance(*answer.ConfidenceScore))
		}

		if banner := sess.LastError(); banner != "" {
			return errors.New(banner)
		}
		return nil
	},
}
