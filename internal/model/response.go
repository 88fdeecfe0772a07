package model

// DataResponse is the uniform success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the uniform failure envelope. The message is always safe to
// show to a caller; internal detail stays in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
