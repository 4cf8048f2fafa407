package response

// StandardApiResponse is the envelope every endpoint answers with, success
// or failure, so the operator app parses one shape everywhere.
type StandardApiResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}
