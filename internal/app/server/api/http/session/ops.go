package session

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) openOp() huma.Operation {
	return huma.Operation{
		OperationID: "session-open",
		Method:      http.MethodPost,
		Path:        "/api/v1/session",
		Summary:     "Open a device session",
		Description: "Registers the device on first contact, verifies its secret afterwards, and issues a bearer token either way.",
		Tags:        []string{"session"},
		Middlewares: h.middleware,
	}
}
