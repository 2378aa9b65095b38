package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// represents JWT claims for the operator dashboard
type Claims struct {
	Subject string `json:"sub_name"`
	jwt.RegisteredClaims
}

// issues and validates admin tokens with an injected secret
type Authenticator struct {
	secret []byte
}

func New(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}
