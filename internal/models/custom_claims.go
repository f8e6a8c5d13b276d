package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by an access token. The
// registered subject holds the username.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id,omitempty"`
	TokenType string `json:"token_type"`
}

const TokenTypeAccess = "access"
