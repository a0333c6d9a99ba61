package note

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"notemaster/internal/app/client"
)

// NoteCmd is the parent command for note operations.
var NoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
	Long:  `Create, view, edit, tag and delete notes.`,
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := client.AppFromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

// resolveID accepts a full note id or a unique prefix, as printed by list.
func resolveID(app *client.App, prefix string) (string, error) {
	if _, err := app.GetNote(prefix); err == nil {
		return prefix, nil
	}

	notes, err := app.Notes()
	if err != nil {
		return "", err
	}

	var match string
	for id := range notes {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("note id %q is ambiguous", prefix)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("no note matches %q", prefix)
	}
	return match, nil
}
