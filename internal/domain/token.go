package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims são as claims dos tokens emitidos pelo serviço de autenticação
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
