package dto

// ErrorResponse is the flat error body returned on every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}
