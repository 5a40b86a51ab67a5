package dto

// LoginReq represents the request body for the /AuthManagement/Login endpoint.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
