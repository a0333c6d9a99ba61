package session

type openInput struct {
	Body openRequest
}

type openRequest struct {
	DeviceID string `json:"device_id" doc:"Client-generated device identifier" minLength:"1"`
	Secret   string `json:"secret" doc:"Device secret" minLength:"1"`
}

type openOutput struct {
	Body openResponse
}

type openResponse struct {
	Token string `json:"token" doc:"Bearer token for subsequent requests"`
}
