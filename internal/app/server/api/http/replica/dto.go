package replica

import (
	"notemaster/internal/domain/replica"
)

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Documents []replica.Document `json:"documents"`
}

type createInput struct {
	Body replica.Document
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	ID string `json:"id" doc:"Server-assigned document id"`
}

type updateInput struct {
	ID   string `path:"id" doc:"Document id"`
	Body replica.Document
}

type deleteInput struct {
	ID string `path:"id" doc:"Document id"`
}

type statusOutput struct {
	Body statusResponse
}

type statusResponse struct {
	Status string `json:"status"`
}
