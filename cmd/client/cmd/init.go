package cmd

import (
	"notemaster/cmd/client/cmd/note"
	"notemaster/cmd/client/cmd/sync"
	"notemaster/cmd/client/cmd/tags"
)

func init() {
	rootCmd.AddCommand(note.NoteCmd)
	note.NoteCmd.AddCommand(note.CreateCmd)
	note.NoteCmd.AddCommand(note.ListCmd)
	note.NoteCmd.AddCommand(note.ShowCmd)
	note.NoteCmd.AddCommand(note.EditCmd)
	note.NoteCmd.AddCommand(note.TagCmd)
	note.NoteCmd.AddCommand(note.FavoriteCmd)
	note.NoteCmd.AddCommand(note.ArchiveCmd)
	note.NoteCmd.AddCommand(note.DeleteCmd)
	note.NoteCmd.AddCommand(note.RestoreCmd)

	rootCmd.AddCommand(sync.SyncCmd)
	rootCmd.AddCommand(tags.TagsCmd)
}
