package notes

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes",
		Summary:     "List active notes",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Get a note",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/notes",
		Summary:     "Create a note",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Partially update a note",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/notes/{id}",
		Summary:     "Move a note to trash",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-search",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/search/{query}",
		Summary:     "Search notes",
		Description: "Case-insensitive match against title, content and tags.",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) byTagOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-by-tag",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags/{tag}/notes",
		Summary:     "List notes carrying a tag",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) favoritesOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-favorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/favorites",
		Summary:     "List favorite notes",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) archivedOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-archived",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/archived",
		Summary:     "List archived notes",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) trashOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-trash",
		Method:      http.MethodGet,
		Path:        "/api/v1/notes/trash",
		Summary:     "List trashed notes",
		Tags:        []string{"notes"},
		Middlewares: h.middleware,
	}
}
