package replica

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/documents",
		Summary:     "List the device's documents",
		Description: "Returns every document of the device, soft-deleted ones included.",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/documents",
		Summary:     "Create a document",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/documents/{id}",
		Summary:     "Overwrite a document",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "documents-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/documents/{id}",
		Summary:     "Purge a document",
		Tags:        []string{"documents"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
