package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credential is a row of the auth table. The pwd column holds a bcrypt hash
// for current accounts; rows migrated from the legacy console may still carry
// plaintext.
type Credential struct {
	ID        string    `db:"id" json:"id"`
	Username  string    `db:"user" json:"user"`
	Password  string    `db:"pwd" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// JWTClaims are the session claims attached to authenticated requests.
type JWTClaims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest carries the credential check payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued session token.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	Username    string    `json:"username"`
}
