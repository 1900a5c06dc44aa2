package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload. Role is deliberately absent: the guard
// re-reads the account on every request so role and active-flag
// changes take effect immediately.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
