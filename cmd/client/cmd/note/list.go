package note

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notemaster/internal/domain/note"
)

var (
	listFavorites bool
	listArchived  bool
	listTrash     bool
	listTag       string
	listSearch    string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long: `List notes, newest first. The default view hides archived and
trashed notes; use the flags to switch views.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		var notes []note.Note
		switch {
		case listSearch != "":
			notes, err = app.SearchNotes(listSearch)
		case listTag != "":
			notes, err = app.NotesByTag(listTag)
		case listFavorites:
			notes, err = app.ListNotes(note.ViewFavorites)
		case listArchived:
			notes, err = app.ListNotes(note.ViewArchived)
		case listTrash:
			notes, err = app.ListNotes(note.ViewTrash)
		default:
			notes, err = app.ListNotes(note.ViewAll)
		}
		if err != nil {
			return fmt.Errorf("list notes: %w", err)
		}

		if len(notes) == 0 {
			fmt.Println("No notes found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tTAGS\tUPDATED")
		for _, n := range notes {
			marker := ""
			if n.Favorite {
				marker = color.YellowString("*") + " "
			}
			fmt.Fprintf(w, "%s\t%s%s\t%s\t%s\n",
				shortID(n.ID),
				marker, n.Title,
				strings.Join(n.Tags, ","),
				n.UpdatedAt.Local().Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	ListCmd.Flags().BoolVar(&listFavorites, "favorites", false, "show favorites only")
	ListCmd.Flags().BoolVar(&listArchived, "archived", false, "show archived notes")
	ListCmd.Flags().BoolVar(&listTrash, "trash", false, "show trashed notes")
	ListCmd.Flags().StringVar(&listTag, "tag", "", "show notes carrying a tag")
	ListCmd.Flags().StringVar(&listSearch, "search", "", "full-text search")
}
