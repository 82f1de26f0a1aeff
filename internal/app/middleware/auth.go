package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/app/config"
	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/role"
)

const (
	ctxUserID   = "userID"
	ctxUserRole = "userRole"
)

// TokenBlacklist - хранилище отозванных токенов (Redis)
type TokenBlacklist interface {
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}

type AuthMiddleware struct {
	Blacklist TokenBlacklist
	Config    *config.Config
}

func NewAuthMiddleware(blacklist TokenBlacklist, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		Blacklist: blacklist,
		Config:    cfg,
	}
}

// BearerToken достает токен из заголовка Authorization
func BearerToken(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// WithAuthCheck middleware для проверки авторизации с ролями
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return gin.HandlerFunc(func(gCtx *gin.Context) {
		jwtStr := BearerToken(gCtx.GetHeader("Authorization"))
		if jwtStr == "" {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		// Отозванный токен не принимается; без ответа Redis тоже не пускаем
		revoked, err := am.Blacklist.IsBlacklisted(gCtx.Request.Context(), jwtStr)
		if err != nil {
			logrus.Errorf("blacklist check failed: %v", err)
			gCtx.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		if revoked {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := ParseToken(jwtStr, am.Config.JWT.Token)
		if err != nil {
			gCtx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if len(assignedRoles) > 0 && !hasRequiredRole(claims.Role, assignedRoles) {
			gCtx.AbortWithStatus(http.StatusForbidden)
			return
		}

		gCtx.Set(ctxUserID, claims.UserID)
		gCtx.Set(ctxUserRole, claims.Role)

		gCtx.Next()
	})
}

// ParseToken парсит и валидирует JWT токен
func ParseToken(tokenString, secret string) (*ds.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.NewValidationError("invalid token claims", jwt.ValidationErrorClaimsInvalid)
	}
	return claims, nil
}

// ActorFrom - пользователь запроса, сохраненный WithAuthCheck
func ActorFrom(c *gin.Context) (role.Actor, bool) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return role.Actor{}, false
	}
	userID, ok := id.(uint)
	if !ok {
		return role.Actor{}, false
	}
	r, _ := c.Get(ctxUserRole)
	userRole, _ := r.(role.Role)
	return role.Actor{UserID: userID, Role: userRole}, true
}

func hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
