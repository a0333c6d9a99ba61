package note

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var FavoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a note's favorite flag",
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

		n, err = app.SetFavorite(id, !n.Favorite)
		if err != nil {
			return fmt.Errorf("set favorite: %w", err)
		}
		if n.Favorite {
			color.Yellow("Added %q to favorites", n.Title)
		} else {
			fmt.Printf("Removed %q from favorites\n", n.Title)
		}
		return nil
	},
}

var ArchiveCmd = &cobra.Command{
	Use:   "archive <id>",
	Short: "Toggle a note's archived flag",
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

		n, err = app.SetArchived(id, !n.Archived)
		if err != nil {
			return fmt.Errorf("set archived: %w", err)
		}
		if n.Archived {
			color.Cyan("Archived %q", n.Title)
		} else {
			fmt.Printf("Unarchived %q\n", n.Title)
		}
		return nil
	},
}
