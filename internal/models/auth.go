package models

import "github.com/golang-jwt/jwt/v5"

// OperatorRole restricts what an authenticated operator may do.
type OperatorRole string

// Operator roles.
const (
	RoleAdmin   OperatorRole = "ADMIN"
	RoleTeacher OperatorRole = "TEACHER"
)

// OperatorClaims are the JWT claims carried by operator tokens.
type OperatorClaims struct {
	Name string       `json:"name"`
	Role OperatorRole `json:"role"`
	jwt.RegisteredClaims
}
