package handler

import "time"

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required"`
	UserType string `json:"userType" binding:"omitempty,oneof=individual corporate"`
}

// LoginUser is the user block of the login response
type LoginUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// LoginData is the data block of the login response. The field names and the
// fixed tokenType/expiresIn values are a published contract.
type LoginData struct {
	AuthToken     string    `json:"authToken"`
	TokenType     string    `json:"tokenType"`
	ExpiresIn     int64     `json:"expiresIn"`
	ExpiresAt     time.Time `json:"expiresAt"`
	User          LoginUser `json:"user"`
	LoginDateTime time.Time `json:"loginDateTime"`
}
