package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/importer"
	"marketplace-admin/internal/app/middleware"
	"marketplace-admin/internal/app/pricing"
	"marketplace-admin/internal/app/role"
)

// Store - все, что API требует от хранилища
type Store interface {
	pricing.MethodStore
	pricing.ModifierStore
	pricing.ServiceStore
	UpdateServiceIcon(ctx context.Context, id uint, url string) error
}

// IconStorage - объектное хранилище иконок (MinIO)
type IconStorage interface {
	UploadIcon(ctx context.Context, serviceID uint, data []byte, originalFilename string) (string, error)
	DeleteIcon(ctx context.Context, name string) error
	IconURL(ctx context.Context, name string) (string, error)
}

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Store       Store
	Methods     *pricing.MethodCatalog
	Modifiers   *pricing.ModifierSet
	Services    *pricing.ServiceCatalog
	Quoter      *pricing.Quoter
	Importer    *importer.Importer
	Icons       IconStorage
	AuthHandler *AuthHandler

	// Максимум строк в одном пакетном запросе
	BatchMaxRows int
}

func NewAPIHandler(store Store, icons IconStorage, authHandler *AuthHandler, batchMaxRows int) *APIHandler {
	return &APIHandler{
		Store:        store,
		Methods:      pricing.NewMethodCatalog(store, store),
		Modifiers:    pricing.NewModifierSet(store, store),
		Services:     pricing.NewServiceCatalog(store),
		Quoter:       pricing.NewQuoter(store, store),
		Importer:     importer.New(store, store),
		Icons:        icons,
		AuthHandler:  authHandler,
		BatchMaxRows: batchMaxRows,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// writeError переводит ошибку домена в HTTP-статус.
// op попадает в лог и в ответ 500.
func (h *APIHandler) writeError(c *gin.Context, err error, op string) {
	var (
		conflict     *pricing.ConflictError
		validation   *pricing.ValidationError
		precondition *pricing.PreconditionError
	)

	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Status:  "fail",
			Message: "Запись с таким именем уже существует",
			Fields:  conflict.Fields,
		})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Status:  "fail",
			Message: "Данные не прошли проверку",
			Fields:  validation.Fields,
		})
	case errors.As(err, &precondition):
		h.errorResponse(c, http.StatusUnprocessableEntity, precondition.Error())
	case errors.Is(err, pricing.ErrNotFound):
		h.errorResponse(c, http.StatusNotFound, "Запись не найдена")
	case errors.Is(err, role.ErrForbidden):
		h.errorResponse(c, http.StatusForbidden, "Недостаточно прав")
	default:
		logrus.Errorf("%s: %v", op, err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка: "+op)
	}
}

// parseID читает положительный числовой параметр пути
func (h *APIHandler) parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Неверный параметр "+param)
		return 0, false
	}
	return uint(id), true
}

func (h *APIHandler) actor(c *gin.Context) (role.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		logrus.Warn("actor not found in context")
		h.errorResponse(c, http.StatusUnauthorized, "Пользователь не авторизован")
	}
	return actor, ok
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong"})
}
