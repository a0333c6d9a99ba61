package sync

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notemaster/internal/app/client"
)

var statusOnly bool

var SyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize notes with the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := client.AppFromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		if statusOnly {
			printStatus(app.SyncStatus())
			return nil
		}

		ok = app.SyncNow(cmd.Context())
		if !ok && app.SyncStatus() == client.StatusSyncing {
			fmt.Println("Sync already in progress")
			return nil
		}
		printStatus(app.SyncStatus())
		if !ok {
			return fmt.Errorf("sync did not complete")
		}
		return nil
	},
}

func printStatus(s client.Status) {
	switch s {
	case client.StatusSynced:
		color.Green("Status: %s", s)
	case client.StatusSyncing:
		color.Cyan("Status: %s", s)
	case client.StatusError:
		color.Red("Status: %s", s)
	default:
		color.Yellow("Status: %s", s)
	}
}

func init() {
	SyncCmd.Flags().BoolVar(&statusOnly, "status", false, "print the current sync status without syncing")
}
