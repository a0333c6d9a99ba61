package notes

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notemaster/internal/app/server/notestore"
)

func testHandler(t *testing.T) (*Handler, *notestore.Store) {
	t.Helper()
	store := notestore.New()
	return NewHandler(store, slog.Default(), huma.Middlewares{}), store
}

func TestHandlerCreateAndGet(t *testing.T) {
	handler, _ := testHandler(t)
	ctx := context.Background()

	created, err := handler.create(ctx, &createInput{
		Body: createRequest{Title: "Groceries", Content: "milk", Tags: []string{"home"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Body.ID)

	got, err := handler.get(ctx, &getInput{ID: created.Body.ID})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Body.Title)
}

func TestHandlerGetMissingIs404(t *testing.T) {
	handler, _ := testHandler(t)

	_, err := handler.get(context.Background(), &getInput{ID: 42})
	require.Error(t, err)

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.GetStatus())
}

func TestHandlerUpdatePartial(t *testing.T) {
	handler, _ := testHandler(t)
	ctx := context.Background()

	created, err := handler.create(ctx, &createInput{Body: createRequest{Title: "old", Content: "body"}})
	require.NoError(t, err)

	title := "new"
	updated, err := handler.update(ctx, &updateInput{
		ID:   created.Body.ID,
		Body: updateRequest{Title: &title},
	})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Body.Title)
	assert.Equal(t, "body", updated.Body.Content)
}

func TestHandlerDeleteMovesToTrash(t *testing.T) {
	handler, store := testHandler(t)
	ctx := context.Background()

	created, err := handler.create(ctx, &createInput{Body: createRequest{Title: "doomed"}})
	require.NoError(t, err)

	deleted, err := handler.delete(ctx, &getInput{ID: created.Body.ID})
	require.NoError(t, err)
	assert.True(t, deleted.Body.Deleted)

	trash, err := handler.trash(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, trash.Body.Notes, 1)

	assert.Empty(t, store.List())
}

func TestHandlerSearchAndViews(t *testing.T) {
	handler, _ := testHandler(t)
	ctx := context.Background()

	a, err := handler.create(ctx, &createInput{Body: createRequest{Title: "Shopping", Content: "milk", Tags: []string{"home"}}})
	require.NoError(t, err)
	_, err = handler.create(ctx, &createInput{Body: createRequest{Title: "Standup", Tags: []string{"work"}}})
	require.NoError(t, err)

	favorite := true
	_, err = handler.update(ctx, &updateInput{ID: a.Body.ID, Body: updateRequest{Favorite: &favorite}})
	require.NoError(t, err)

	found, err := handler.search(ctx, &searchInput{Query: "milk"})
	require.NoError(t, err)
	require.Len(t, found.Body.Notes, 1)
	assert.Equal(t, a.Body.ID, found.Body.Notes[0].ID)

	byTag, err := handler.byTag(ctx, &byTagInput{Tag: "work"})
	require.NoError(t, err)
	assert.Len(t, byTag.Body.Notes, 1)

	favorites, err := handler.favorites(ctx, nil)
	require.NoError(t, err)
	require.Len(t, favorites.Body.Notes, 1)
	assert.Equal(t, a.Body.ID, favorites.Body.Notes[0].ID)
}
