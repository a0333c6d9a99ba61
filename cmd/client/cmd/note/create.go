package note

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createTags []string

var CreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		title := strings.Join(args, " ")
		content, err := cmd.Flags().GetString("content")
		if err != nil {
			return err
		}

		n, err := app.CreateNote(title, content)
		if err != nil {
			return fmt.Errorf("create note: %w", err)
		}

		for _, tag := range createTags {
			if n, err = app.AddTag(n.ID, tag); err != nil {
				return fmt.Errorf("tag note: %w", err)
			}
		}

		color.Green("Created %q", n.Title)
		fmt.Printf("id: %s\n", n.ID)
		return nil
	},
}

func init() {
	CreateCmd.Flags().String("content", "", "note body")
	CreateCmd.Flags().StringSliceVar(&createTags, "tag", nil, "tags to attach (repeatable)")
}
