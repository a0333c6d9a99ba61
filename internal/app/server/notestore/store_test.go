package notestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAssignsIncrementingIDs(t *testing.T) {
	store := New()

	a := store.Create("first", "", nil)
	b := store.Create("second", "", nil)

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.NotNil(t, a.Tags)
}

func TestStoreCreateDefaultTitle(t *testing.T) {
	store := New()

	n := store.Create("", "body", nil)
	assert.Equal(t, "Untitled Note", n.Title)
}

func TestStoreGet(t *testing.T) {
	store := New()
	created := store.Create("note", "", nil)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = store.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreUpdatePartial(t *testing.T) {
	store := New()
	created := store.Create("old", "body", []string{"a"})

	title := "new"
	favorite := true
	updated, err := store.Update(created.ID, Patch{Title: &title, Favorite: &favorite})
	require.NoError(t, err)

	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, []string{"a"}, updated.Tags)
	assert.True(t, updated.Favorite)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestStoreDeleteIsSoft(t *testing.T) {
	store := New()
	created := store.Create("doomed", "", nil)

	deleted, err := store.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	assert.Empty(t, store.List())
	require.Len(t, store.Trash(), 1)

	// Still addressable for restore.
	restore := false
	restored, err := store.Update(created.ID, Patch{Deleted: &restore})
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
}

func TestStoreViews(t *testing.T) {
	store := New()

	active := store.Create("active", "", nil)
	fav := store.Create("favorite", "", nil)
	favorite := true
	_, err := store.Update(fav.ID, Patch{Favorite: &favorite})
	require.NoError(t, err)

	arch := store.Create("archived", "", nil)
	archived := true
	_, err = store.Update(arch.ID, Patch{Archived: &archived})
	require.NoError(t, err)

	gone := store.Create("deleted", "", nil)
	_, err = store.Delete(gone.ID)
	require.NoError(t, err)

	list := store.List()
	assert.Len(t, list, 2)

	favs := store.Favorites()
	require.Len(t, favs, 1)
	assert.Equal(t, fav.ID, favs[0].ID)

	archd := store.Archived()
	require.Len(t, archd, 1)
	assert.Equal(t, arch.ID, archd[0].ID)

	trash := store.Trash()
	require.Len(t, trash, 1)
	assert.Equal(t, gone.ID, trash[0].ID)

	_ = active
}

func TestStoreSearch(t *testing.T) {
	store := New()

	store.Create("Shopping list", "milk and eggs", []string{"home"})
	store.Create("Standup", "meeting notes", []string{"work"})
	gone := store.Create("Old milk note", "", nil)
	_, err := store.Delete(gone.ID)
	require.NoError(t, err)

	byTitle := store.Search("shopping")
	require.Len(t, byTitle, 1)

	byContent := store.Search("MILK")
	require.Len(t, byContent, 1)

	byTag := store.Search("work")
	require.Len(t, byTag, 1)

	assert.Empty(t, store.Search("nothing"))
}

func TestStoreByTag(t *testing.T) {
	store := New()

	tagged := store.Create("tagged", "", []string{"home", "todo"})
	store.Create("other", "", []string{"work"})

	byTag := store.ByTag("home")
	require.Len(t, byTag, 1)
	assert.Equal(t, tagged.ID, byTag[0].ID)

	// Exact tag match only.
	assert.Empty(t, store.ByTag("hom"))
}
