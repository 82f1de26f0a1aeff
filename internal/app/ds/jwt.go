package ds

import (
	"marketplace-admin/internal/app/role"

	"github.com/golang-jwt/jwt"
)

// JWTClaims - Id стандартных claims заполняется uuid, чтобы токены одного пользователя различались
type JWTClaims struct {
	jwt.StandardClaims
	UserID uint      `json:"user_id"`
	Role   role.Role `json:"role"`
}
