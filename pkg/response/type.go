package response

// Resp is the envelope every endpoint answers with, errors included.
type Resp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
