package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a note's title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := resolveID(app, args[0])
		if err != nil {
			return err
		}
		n, err := app.GetNote(id)
		if err != nil {
			return err
		}

		title := n.Title
		content := n.Content
		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("content") {
			content, _ = cmd.Flags().GetString("content")
		}

		if title == n.Title && content == n.Content {
			fmt.Println("Nothing to change")
			return nil
		}

		if _, err := app.UpdateNote(id, title, content); err != nil {
			return fmt.Errorf("update note: %w", err)
		}
		color.Green("Updated %q", title)
		return nil
	},
}

func init() {
	EditCmd.Flags().String("title", "", "new title")
	EditCmd.Flags().String("content", "", "new body")
}
