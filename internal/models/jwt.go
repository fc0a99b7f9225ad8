package models

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
