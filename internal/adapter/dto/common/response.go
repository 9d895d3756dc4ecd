package common

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
	Time        string `json:"time,omitempty"`
	Error       string `json:"error,omitempty"`
}
