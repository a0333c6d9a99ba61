package note

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var ShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
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

		title := color.New(color.Bold).Sprint(n.Title)
		if n.Favorite {
			title = color.YellowString("*") + " " + title
		}
		fmt.Println(title)
		fmt.Printf("id: %s\n", n.ID)
		if len(n.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(n.Tags, ", "))
		}
		if n.Archived {
			fmt.Println(color.CyanString("archived"))
		}
		if n.Deleted {
			fmt.Println(color.RedString("in trash"))
		}
		fmt.Printf("updated: %s\n", n.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		if n.Content != "" {
			fmt.Println()
			fmt.Println(n.Content)
		}
		return nil
	},
}
