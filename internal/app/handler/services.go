package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/importer"
	"marketplace-admin/internal/app/storage"
)

// ============ ДОМЕН УСЛУГИ ============

// GetServices получает список услуг
// @Summary Получение списка услуг
// @Tags Services
// @Produce json
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	services, err := h.Services.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err, "получение услуг")
		return
	}

	resp := dto.ServiceListResponse{Services: make([]dto.ServiceResponse, len(services)), Total: len(services)}
	for i, s := range services {
		resp.Services[i] = dto.NewServiceResponse(s)
	}
	c.JSON(http.StatusOK, resp)
}

// GetService получает одну услугу
// @Summary Получение услуги
// @Tags Services
// @Produce json
// @Param id path int true "ID услуги"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id} [get]
func (h *APIHandler) GetService(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	svc, err := h.Services.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "получение услуги")
		return
	}
	c.JSON(http.StatusOK, dto.NewServiceResponse(svc))
}

// CreateService создает одну услугу
// @Summary Создание услуги
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ServiceRow true "Данные услуги"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/services [post]
func (h *APIHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRow
	if !h.bindJSON(c, &req) {
		return
	}

	svc, err := h.Services.Create(c.Request.Context(), req.Draft(importer.DefaultServiceRow()))
	if err != nil {
		h.writeError(c, err, "создание услуги")
		return
	}
	c.JSON(http.StatusCreated, dto.NewServiceResponse(svc))
}

// UploadServiceIcon загружает иконку услуги
// @Summary Загрузка иконки услуги
// @Description Загружает иконку услуги в MinIO, старая иконка удаляется
// @Tags Services
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param icon formData file true "Файл иконки"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/services/{id}/icon [post]
func (h *APIHandler) UploadServiceIcon(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if h.Icons == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище иконок не настроено")
		return
	}
	ctx := c.Request.Context()

	svc, err := h.Services.Get(ctx, id)
	if err != nil {
		h.writeError(c, err, "получение услуги")
		return
	}

	file, err := c.FormFile("icon")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}
	if file.Size > storage.MaxIconSize {
		h.errorResponse(c, http.StatusBadRequest, "Файл слишком большой")
		return
	}
	if _, ok := storage.ContentType(file.Filename); !ok {
		h.errorResponse(c, http.StatusBadRequest, "Иконка должна быть изображением")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	data, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	name, err := h.Icons.UploadIcon(ctx, id, data, file.Filename)
	if err != nil {
		h.writeError(c, err, "загрузка иконки")
		return
	}

	if err = h.Store.UpdateServiceIcon(ctx, id, name); err != nil {
		h.writeError(c, err, "обновление иконки")
		return
	}

	// Старую иконку удаляем только после успешной замены
	if svc.IconURL != "" {
		if err := h.Icons.DeleteIcon(ctx, svc.IconURL); err != nil {
			logrus.Warnf("Failed to delete old icon %s: %v", svc.IconURL, err)
		}
	}

	h.successResponse(c, http.StatusOK, "Иконка успешно загружена", gin.H{
		"iconUrl": name,
	})
}

// GetServiceIcon перенаправляет на временную ссылку иконки в MinIO
// @Summary Иконка услуги
// @Tags Services
// @Param id path int true "ID услуги"
// @Success 307
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/services/{id}/icon [get]
func (h *APIHandler) GetServiceIcon(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	if h.Icons == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Хранилище иконок не настроено")
		return
	}

	svc, err := h.Services.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "получение услуги")
		return
	}
	if svc.IconURL == "" {
		h.errorResponse(c, http.StatusNotFound, "У услуги нет иконки")
		return
	}

	url, err := h.Icons.IconURL(c.Request.Context(), svc.IconURL)
	if err != nil {
		h.writeError(c, err, "ссылка на иконку")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, url)
}
