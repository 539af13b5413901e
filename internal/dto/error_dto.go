package dto

// ErrorResponse is the standard error body. Details carries field lists
// for validation failures and raw error messages in development mode.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
