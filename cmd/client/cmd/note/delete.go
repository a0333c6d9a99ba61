package note

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var rmForce bool

var DeleteCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Move a note to trash",
	Long: `Moves the note to trash. Trashed notes still sync so the deletion
reaches other devices; use restore to bring one back.`,
	Args: cobra.ExactArgs(1),
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

		// Only prompt when someone is actually at the keyboard.
		if !rmForce && term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Printf("Move %q to trash? [y/N] ", n.Title)
			reader := bufio.NewReader(os.Stdin)
			answer, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
				fmt.Println("Cancelled")
				return nil
			}
		}

		if _, err := app.DeleteNote(id); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		color.Red("Moved %q to trash", n.Title)
		return nil
	},
}

var RestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Restore a note from trash",
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
		n, err := app.RestoreNote(id)
		if err != nil {
			return fmt.Errorf("restore note: %w", err)
		}
		color.Green("Restored %q", n.Title)
		return nil
	},
}

func init() {
	DeleteCmd.Flags().BoolVarP(&rmForce, "force", "f", false, "skip confirmation")
}
