package api

// MessageResponse is the body of endpoints that only report an outcome
type MessageResponse struct {
	Message string `json:"message"`
}

// DeleteAllResponse reports how many recipes DELETE /recipes/deleteAll removed
type DeleteAllResponse struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
}
