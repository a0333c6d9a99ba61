package notes

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notemaster/internal/app/server/notestore"
)

type Handler struct {
	store      *notestore.Store
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store *notestore.Store, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	// Static segments before the {id} route so huma does not shadow them.
	huma.Register(api, h.favoritesOp(), h.favorites)
	huma.Register(api, h.archivedOp(), h.archived)
	huma.Register(api, h.trashOp(), h.trash)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.byTagOp(), h.byTag)

	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: listResponse{Notes: h.store.List()}}, nil
}

func (h *Handler) get(_ context.Context, input *getInput) (*noteOutput, error) {
	n, err := h.store.Get(input.ID)
	if err != nil {
		if errors.Is(err, notestore.ErrNotFound) {
			return nil, huma.Error404NotFound("note not found")
		}
		return nil, err
	}
	return &noteOutput{Body: n}, nil
}

func (h *Handler) create(_ context.Context, input *createInput) (*noteOutput, error) {
	n := h.store.Create(input.Body.Title, input.Body.Content, input.Body.Tags)
	h.log.Debug("note created", "id", n.ID)
	return &noteOutput{Body: n}, nil
}

func (h *Handler) update(_ context.Context, input *updateInput) (*noteOutput, error) {
	n, err := h.store.Update(input.ID, notestore.Patch{
		Title:    input.Body.Title,
		Content:  input.Body.Content,
		Tags:     input.Body.Tags,
		Favorite: input.Body.Favorite,
		Archived: input.Body.Archived,
		Deleted:  input.Body.Deleted,
	})
	if err != nil {
		if errors.Is(err, notestore.ErrNotFound) {
			return nil, huma.Error404NotFound("note not found")
		}
		return nil, err
	}
	return &noteOutput{Body: n}, nil
}

func (h *Handler) delete(_ context.Context, input *getInput) (*noteOutput, error) {
	n, err := h.store.Delete(input.ID)
	if err != nil {
		if errors.Is(err, notestore.ErrNotFound) {
			return nil, huma.Error404NotFound("note not found")
		}
		return nil, err
	}
	return &noteOutput{Body: n}, nil
}

func (h *Handler) search(_ context.Context, input *searchInput) (*listOutput, error) {
	return &listOutput{Body: listResponse{Notes: h.store.Search(input.Query)}}, nil
}

func (h *Handler) byTag(_ context.Context, input *byTagInput) (*listOutput, error) {
	return &listOutput{Body: listResponse{Notes: h.store.ByTag(input.Tag)}}, nil
}

func (h *Handler) favorites(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: listResponse{Notes: h.store.Favorites()}}, nil
}

func (h *Handler) archived(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: listResponse{Notes: h.store.Archived()}}, nil
}

func (h *Handler) trash(_ context.Context, _ *struct{}) (*listOutput, error) {
	return &listOutput{Body: listResponse{Notes: h.store.Trash()}}, nil
}
