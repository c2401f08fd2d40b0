package models

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims carried by the identity provider's bearer token. UserID is the
// stable seller/user id everything else is scoped by.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
