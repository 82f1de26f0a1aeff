package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/pricing"
)

// ============ ПАКЕТНОЕ СОЗДАНИЕ ============

func (h *APIHandler) checkBatchSize(c *gin.Context, rows int) bool {
	if h.BatchMaxRows > 0 && rows > h.BatchMaxRows {
		h.writeError(c, &pricing.ValidationError{Fields: []pricing.FieldError{{
			Field:   "rows",
			Code:    pricing.CodeInvalid,
			Message: fmt.Sprintf("At most %d rows per batch", h.BatchMaxRows),
		}}}, "пакетное создание")
		return false
	}
	return true
}

// BatchCreateServices создает услуги пачкой
// @Summary Пакетное создание услуг
// @Description Импорт не атомарный: ответ содержит число созданных и ошибки по строкам
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchServicesRequest true "Строки"
// @Success 200 {object} importer.Result
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/batch/services [post]
func (h *APIHandler) BatchCreateServices(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.BatchServicesRequest
	if !h.bindJSON(c, &req) || !h.checkBatchSize(c, len(req.Rows)) {
		return
	}

	res, err := h.Importer.ImportServices(c.Request.Context(), actor, req.Drafts())
	if err != nil {
		h.writeError(c, err, "пакетное создание услуг")
		return
	}
	c.JSON(http.StatusOK, res)
}

// BatchCreatePricingMethods создает методы одной услуги пачкой
// @Summary Пакетное создание методов ценообразования
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchPricingMethodsRequest true "Строки"
// @Success 200 {object} importer.Result
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/batch/pricing-methods [post]
func (h *APIHandler) BatchCreatePricingMethods(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.BatchPricingMethodsRequest
	if !h.bindJSON(c, &req) || !h.checkBatchSize(c, len(req.Rows)) {
		return
	}

	res, err := h.Importer.ImportPricingMethods(c.Request.Context(), actor, req.ServiceID, req.Drafts())
	if err != nil {
		h.writeError(c, err, "пакетное создание методов")
		return
	}
	c.JSON(http.StatusOK, res)
}

// ValidateBatchServices проверяет строки услуг без записи
// @Summary Проверка пакета услуг
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchServicesRequest true "Строки"
// @Success 200 {object} dto.PreflightResponse
// @Router /api/batch/services/validate [post]
func (h *APIHandler) ValidateBatchServices(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.BatchServicesRequest
	if !h.bindJSON(c, &req) || !h.checkBatchSize(c, len(req.Rows)) {
		return
	}

	issues, err := h.Importer.PreflightServices(c.Request.Context(), actor, req.Drafts())
	if err != nil {
		h.writeError(c, err, "проверка пакета услуг")
		return
	}
	c.JSON(http.StatusOK, dto.PreflightResponse{Valid: len(issues) == 0, Issues: issues})
}

// ValidateBatchPricingMethods проверяет строки методов без записи
// @Summary Проверка пакета методов
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BatchPricingMethodsRequest true "Строки"
// @Success 200 {object} dto.PreflightResponse
// @Router /api/batch/pricing-methods/validate [post]
func (h *APIHandler) ValidateBatchPricingMethods(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.BatchPricingMethodsRequest
	if !h.bindJSON(c, &req) || !h.checkBatchSize(c, len(req.Rows)) {
		return
	}

	issues, err := h.Importer.PreflightPricingMethods(c.Request.Context(), actor, req.ServiceID, req.Drafts())
	if err != nil {
		h.writeError(c, err, "проверка пакета методов")
		return
	}
	c.JSON(http.StatusOK, dto.PreflightResponse{Valid: len(issues) == 0, Issues: issues})
}

// GetBatchDefaults возвращает значения новой строки
// @Summary Значения новой строки пакета
// @Tags Batch
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BatchDefaultsResponse
// @Router /api/batch/defaults [get]
func (h *APIHandler) GetBatchDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBatchDefaultsResponse())
}
