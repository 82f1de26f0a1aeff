package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/importer"
	"marketplace-admin/internal/app/pricing"
)

// ============ ДОМЕН МЕТОДЫ ЦЕНООБРАЗОВАНИЯ ============

// ListPricingMethods возвращает методы услуги в порядке отображения
// @Summary Методы ценообразования услуги
// @Tags PricingMethods
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param active query bool false "Только активные"
// @Success 200 {object} dto.PricingMethodListResponse
// @Router /api/services/{id}/pricing-methods [get]
func (h *APIHandler) ListPricingMethods(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	var (
		methods []pricing.PricingMethod
		err     error
	)
	if c.Query("active") == "true" {
		methods, err = h.Methods.ListActive(c.Request.Context(), serviceID)
	} else {
		methods, err = h.Methods.List(c.Request.Context(), serviceID)
	}
	if err != nil {
		h.writeError(c, err, "получение методов")
		return
	}

	resp := dto.PricingMethodListResponse{
		PricingMethods: make([]dto.PricingMethodResponse, len(methods)),
		Total:          len(methods),
	}
	for i, m := range methods {
		resp.PricingMethods[i] = dto.NewPricingMethodResponse(m)
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePricingMethod создает метод ценообразования
// @Summary Создание метода ценообразования
// @Tags PricingMethods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePricingMethodRequest true "Метод"
// @Success 201 {object} dto.PricingMethodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/pricing-methods [post]
func (h *APIHandler) CreatePricingMethod(c *gin.Context) {
	var req dto.CreatePricingMethodRequest
	if !h.bindJSON(c, &req) {
		return
	}

	m, err := h.Methods.Create(c.Request.Context(), req.ServiceID, req.Draft(importer.DefaultMethodRow()))
	if err != nil {
		h.writeError(c, err, "создание метода")
		return
	}
	c.JSON(http.StatusCreated, dto.NewPricingMethodResponse(m))
}

// UpdatePricingMethod частично изменяет метод, инварианты проверяются на итоговом методе
// @Summary Изменение метода ценообразования
// @Tags PricingMethods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID метода"
// @Param request body dto.UpdatePricingMethodRequest true "Изменения"
// @Success 200 {object} dto.PricingMethodResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/pricing-methods/{id} [put]
func (h *APIHandler) UpdatePricingMethod(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePricingMethodRequest
	if !h.bindJSON(c, &req) {
		return
	}

	m, err := h.Methods.Update(c.Request.Context(), id, req.Patch())
	if err != nil {
		h.writeError(c, err, "изменение метода")
		return
	}
	c.JSON(http.StatusOK, dto.NewPricingMethodResponse(m))
}

// GetPricingMethod возвращает метод по ID
// @Summary Метод ценообразования
// @Tags PricingMethods
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID метода"
// @Success 200 {object} dto.PricingMethodResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/pricing-methods/{id} [get]
func (h *APIHandler) GetPricingMethod(c *gin.Context) {
	id, ok := h.parseID(c, "id")
	if !ok {
		return
	}

	m, err := h.Methods.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "получение метода")
		return
	}
	c.JSON(http.StatusOK, dto.NewPricingMethodResponse(m))
}
