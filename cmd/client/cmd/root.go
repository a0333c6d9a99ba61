package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"notemaster/internal/app/client"
	"notemaster/internal/app/client/config"
	"notemaster/internal/utils/logger"
)

var (
	cfg       *config.Config
	log       *slog.Logger
	app       *client.App
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "notemaster",
	Short: "NoteMaster - notes that follow you around",
	Long: `NoteMaster is a note-taking client. Notes live in a local store and
keep working offline; a background sync merges them with the server
under last-writer-wins whenever it is reachable.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	defer func() {
		if app != nil {
			app.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg = config.MustLoad()

	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.NewApp(cfg, log)
	if err != nil {
		return fmt.Errorf("init application: %w", err)
	}

	cmd.SetContext(client.WithApp(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "NoteMaster server address")
}
