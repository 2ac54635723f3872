package dto

// LoginRequest POST /api/login body.
type LoginRequest struct {
	Username string `json:"username"`
}

// LoginResponse successful login.
type LoginResponse struct {
	OK       bool   `json:"ok"`
	Username string `json:"username"`
}

// Session an issued session token.
type Session struct {
	Username string
	Token    string
	MaxAge   int // seconds
}
