package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marketplace-admin/internal/app/dto"
	"marketplace-admin/internal/app/pricing"
)

// Quote считает цену метода услуги с учетом модификаторов
// @Summary Расчет цены
// @Description Метод задается methodId или именем/сокращением в поле method
// @Tags Quote
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID услуги"
// @Param request body dto.QuoteRequest true "Контекст расчета"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/services/{id}/quote [post]
func (h *APIHandler) Quote(c *gin.Context) {
	serviceID, ok := h.parseID(c, "id")
	if !ok {
		return
	}
	var req dto.QuoteRequest
	if !h.bindJSON(c, &req) {
		return
	}

	var (
		q   pricing.Quote
		err error
	)
	if req.MethodID != 0 {
		q, err = h.Quoter.Quote(c.Request.Context(), serviceID, req.MethodID, req.QuoteContext())
	} else {
		q, err = h.Quoter.QuoteBySelector(c.Request.Context(), serviceID, req.Method, req.QuoteContext())
	}
	if err != nil {
		h.writeError(c, err, "расчет цены")
		return
	}
	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}
