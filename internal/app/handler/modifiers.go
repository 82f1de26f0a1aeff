package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/pricing"
)

// ============ ДОМЕН МОДИФИКАТОРЫ ============

func (h *APIHandler) modifierResponse(c *gin.Context, status int, m pricing.Modifier) {
	resp, err := dto.NewModifierResponse(m)
	if err != nil {
		h.writeError(c, err, "кодирование модификатора")
		return
	}
	c.JSON(status, resp)
}

// GetServiceModifiers возвращает модификаторы услуги
// @Summary Модификаторы услуги
// @Description По умолчанию все модификаторы; applicable=true - только активные в порядке применения
// @Tags Modifiers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param applicable query bool false "Только применимые"
// @Success 200 {object} dto.ModifierListResponse
// @Router /api/services/{id}/modifiers [get]
func (h *APIHandler) GetServiceModifiers(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var (
		mods []pricing.Modifier
		err  error
	)
	if c.Query("applicable") == "true" {
		mods, err = h.Modifiers.ListApplicable(c.Request.Context(), serviceID)
	} else {
		mods, err = h.Modifiers.List(c.Request.Context(), serviceID)
	}
	if err != nil {
		h.writeError(c, err, "получение модификаторов")
		return
	}

	resp := dto.ModifierListResponse{Modifiers: make([]dto.ModifierResponse, 0, len(mods)), Total: len(mods)}
	for _, m := range mods {
		r, err := dto.NewModifierResponse(m)
		if err != nil {
			h.writeError(c, err, "кодирование модификатора")
			return
		}
		resp.Modifiers = append(resp.Modifiers, r)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateServiceModifier создает модификатор
// @Summary Создание модификатора
// @Tags Modifiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param request body dto.CreateModifierRequest true "Модификатор"
// @Success 201 {object} dto.ModifierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/modifiers [post]
func (h *APIHandler) CreateServiceModifier(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateModifierRequest
	if !h.bindJSON(c, &req) {
		return
	}
	draft, err := req.Draft()
	if err != nil {
		h.writeError(c, err, "разбор условия")
		return
	}

	m, err := h.Modifiers.Create(c.Request.Context(), serviceID, draft)
	if err != nil {
		h.writeError(c, err, "создание модификатора")
		return
	}
	h.modifierResponse(c, http.StatusCreated, m)
}

// UpdateServiceModifier частично изменяет модификатор
// @Summary Изменение модификатора
// @Tags Modifiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param modifier_id path int true "ID модификатора"
// @Param request body dto.UpdateModifierRequest true "Изменения"
// @Success 200 {object} dto.ModifierResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/modifiers/{modifier_id} [put]
func (h *APIHandler) UpdateServiceModifier(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	modifierID, ok := h.parseID(c, "modifier_id")
	if !ok {
		return
	}
	var req dto.UpdateModifierRequest
	if !h.bindJSON(c, &req) {
		return
	}
	patch, err := req.Patch()
	if err != nil {
		h.writeError(c, err, "разбор условия")
		return
	}

	m, err := h.Modifiers.Update(c.Request.Context(), serviceID, modifierID, patch)
	if err != nil {
		h.writeError(c, err, "изменение модификатора")
		return
	}
	h.modifierResponse(c, http.StatusOK, m)
}

// DeleteServiceModifier удаляет модификатор
// @Summary Удаление модификатора
// @Tags Modifiers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param modifier_id path int true "ID модификатора"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/modifiers/{modifier_id} [delete]
func (h *APIHandler) DeleteServiceModifier(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	modifierID, ok := h.parseID(c, "modifier_id")
	if !ok {
		return
	}

	if err := h.Modifiers.Delete(c.Request.Context(), serviceID, modifierID); err != nil {
		h.writeError(c, err, "удаление модификатора")
		return
	}
	h.successResponse(c, http.StatusOK, "Модификатор удален", nil)
}

// ToggleServiceModifier включает или выключает модификатор
// @Summary Переключение модификатора
// @Tags Modifiers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param modifier_id path int true "ID модификатора"
// @Success 200 {object} dto.ModifierResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/services/{id}/modifiers/{modifier_id}/toggle [patch]
func (h *APIHandler) ToggleServiceModifier(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	modifierID, ok := h.parseID(c, "modifier_id")
	if !ok {
		return
	}

	m, err := h.Modifiers.ToggleActive(c.Request.Context(), serviceID, modifierID)
	if err != nil {
		h.writeError(c, err, "переключение модификатора")
		return
	}
	h.modifierResponse(c, http.StatusOK, m)
}
