package models

// AuthResponse is returned by signup and signin.
type AuthResponse struct {
	JWT      string `json:"jwt"`
	Username string `json:"username"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// MessageResponse is a single human-readable outcome message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is used by the authentication gate and router fallbacks.
type ErrorResponse struct {
	Error string `json:"error"`
}
