package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by boundary access tokens. The
// identity claim is the opaque principal handed to the ledger as caller.
type Claims struct {
	Identity Identity `json:"identity"`
	jwt.RegisteredClaims
}

// TokenRequest exchanges the boundary bootstrap secret for an identity token.
type TokenRequest struct {
	Identity string `json:"identity" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
}

// TokenResponse returns the issued access token.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	Identity    Identity  `json:"identity"`
}
