package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var TagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage note tags",
}

var tagAddCmd = &cobra.Command{
	Use:   "add <id> <tag>",
	Short: "Attach a tag to a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := resolveID(app, args[0])
		if err != nil {
			return err
		}
		if _, err := app.AddTag(id, args[1]); err != nil {
			return fmt.Errorf("add tag: %w", err)
		}
		color.Green("Tagged with %q", args[1])
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <id> <tag>",
	Short: "Detach a tag from a note",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		id, err := resolveID(app, args[0])
		if err != nil {
			return err
		}
		if _, err := app.RemoveTag(id, args[1]); err != nil {
			return fmt.Errorf("remove tag: %w", err)
		}
		color.Green("Removed tag %q", args[1])
		return nil
	},
}

func init() {
	TagCmd.AddCommand(tagAddCmd)
	TagCmd.AddCommand(tagRemoveCmd)
}
