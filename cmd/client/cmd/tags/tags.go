package tags

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notemaster/internal/app/client"
)

var tagColors = map[string]*color.Color{
	"blue":   color.New(color.FgBlue),
	"green":  color.New(color.FgGreen),
	"purple": color.New(color.FgMagenta),
	"orange": color.New(color.FgYellow),
	"red":    color.New(color.FgRed),
	"pink":   color.New(color.FgHiMagenta),
}

var TagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with note counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := client.AppFromContext(cmd.Context())
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		counts, err := app.TagCounts()
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		if len(counts) == 0 {
			fmt.Println("No tags yet")
			return nil
		}

		for _, tc := range counts {
			name := tc.Tag
			if c, ok := tagColors[tc.Color]; ok {
				name = c.Sprint(tc.Tag)
			}
			fmt.Printf("%s (%d)\n", name, tc.Count)
		}
		return nil
	},
}
