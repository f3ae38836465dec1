package models

// CheckResponse is the backend's reply. Error replies usually carry only Message.
type CheckResponse struct {
	BreachCount int    `json:"breach_count"`
	Message     string `json:"message,omitempty"`
	Status      string `json:"status,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// CheckResultResponse mirrors the status display for API callers.
type CheckResultResponse struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}
