package dto

// AuthResult is the success response body for register and login.
type AuthResult struct {
	Result bool   `json:"result"`
	Token  string `json:"token"`
}

// ErrorResponse carries a short machine-oriented error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
