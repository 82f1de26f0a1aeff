package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"marketplace-admin/internal/app/config"
	"marketplace-admin/internal/app/ds"
	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/middleware"
	"marketplace-admin/internal/app/role"
)

const issuer = "marketplace-admin"

// UserStore - пользователи админки
type UserStore interface {
	GetUserByLogin(ctx context.Context, login string) (*ds.User, error)
	GetUserByID(ctx context.Context, id uint) (*ds.User, error)
}

// TokenRevoker - запись отозванного токена (Redis)
type TokenRevoker interface {
	WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error
}

type AuthHandler struct {
	Users   UserStore
	Revoker TokenRevoker
	Config  *config.Config
}

func NewAuthHandler(users UserStore, revoker TokenRevoker, config *config.Config) *AuthHandler {
	return &AuthHandler{
		Users:   users,
		Revoker: revoker,
		Config:  config,
	}
}

// HashPassword - bcrypt-хеш пароля для сохранения в БД
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// IssueToken подписывает JWT пользователя
func (h *AuthHandler) IssueToken(userID uint, userRole role.Role, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    issuer,
		},
		UserID: userID,
		Role:   userRole,
	})
	return token.SignedString([]byte(h.Config.JWT.Token))
}

// LoginUser аутентификация пользователя
// @Summary Вход в систему
// @Description Аутентификация пользователя с возвратом JWT токена
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Данные для входа"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Users.GetUserByLogin(ctx.Request.Context(), request.Login)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)) != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("неверный логин или пароль"))
		return
	}

	userRole := role.Role(user.Role)
	accessToken, err := h.IssueToken(user.ID, userRole, time.Now())
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	logrus.Infof("user %d logged in as %s", user.ID, userRole)
	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
		User:      userResponse(user),
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из системы
// @Description Завершение сеанса пользователя с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := middleware.BearerToken(ctx.GetHeader("Authorization"))
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	claims, err := middleware.ParseToken(tokenString, h.Config.JWT.Token)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	// Токен в blacklist до момента своего истечения
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err = h.Revoker.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "пользователь успешно вышел из системы",
	})
}

// GetUserProfile получение профиля пользователя
// @Summary Получение профиля пользователя
// @Description Возвращает информацию о текущем пользователе
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	actor, ok := middleware.ActorFrom(ctx)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("пользователь не авторизован"))
		return
	}

	user, err := h.Users.GetUserByID(ctx.Request.Context(), actor.UserID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("пользователь не найден"))
		return
	}

	ctx.JSON(http.StatusOK, userResponse(user))
}

func userResponse(u *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Login:    u.Login,
		FullName: u.FullName,
		Role:     u.Role,
	}
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}
