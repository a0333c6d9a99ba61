package replica

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"notemaster/internal/app/server/api/http/middleware/auth"
	"notemaster/internal/domain/replica"
)

type Handler struct {
	service    replica.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service replica.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	docs, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []replica.Document{}
	}

	return &listOutput{
		Body: listResponse{Documents: docs},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	docID, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		if errors.Is(err, replica.ErrInvalidDocument) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &createOutput{
		Body: createResponse{ID: docID},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Update(ctx, userID, input.ID, input.Body); err != nil {
		if errors.Is(err, replica.ErrNotFound) {
			return nil, huma.Error404NotFound("document not found")
		}
		if errors.Is(err, replica.ErrInvalidDocument) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	return &statusOutput{
		Body: statusResponse{Status: "Ok"},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, replica.ErrNotFound) {
			return nil, huma.Error404NotFound("document not found")
		}
		return nil, err
	}

	return &statusOutput{
		Body: statusResponse{Status: "Ok"},
	}, nil
}
