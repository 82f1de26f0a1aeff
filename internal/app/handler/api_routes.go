package handler

import (
	"github.com/gin-gonic/gin"

	"marketplace-admin/internal/app/middleware"
	"marketplace-admin/internal/app/role"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	staff := authMiddleware.WithAuthCheck(role.Manager, role.Admin)
	admin := authMiddleware.WithAuthCheck(role.Admin)
	anyUser := authMiddleware.WithAuthCheck(role.Buyer, role.Manager, role.Admin)

	// ============ Услуги (Services) ============
	services := api.Group("/services")
	{
		// Публичные эндпоинты (без авторизации)
		services.GET("", h.GetServices)
		services.GET("/:id", h.GetService)
		services.GET("/:id/icon", h.GetServiceIcon)

		services.POST("", admin, h.CreateService)
		services.POST("/:id/icon", admin, h.UploadServiceIcon)

		// Модификаторы услуги
		services.GET("/:id/modifiers", staff, h.GetServiceModifiers)
		services.POST("/:id/modifiers", admin, h.CreateServiceModifier)
		services.PUT("/:id/modifiers/:modifier_id", admin, h.UpdateServiceModifier)
		services.DELETE("/:id/modifiers/:modifier_id", admin, h.DeleteServiceModifier)
		services.PATCH("/:id/modifiers/:modifier_id/toggle", admin, h.ToggleServiceModifier)

		services.GET("/:id/pricing-methods", staff, h.ListPricingMethods)

		// Расчет цены доступен любому авторизованному пользователю
		services.POST("/:id/quote", anyUser, h.Quote)
	}

	// ============ Методы ценообразования (Pricing Methods) ============
	methods := api.Group("/pricing-methods")
	{
		methods.POST("", admin, h.CreatePricingMethod)
		methods.GET("/:id", staff, h.GetPricingMethod)
		methods.PUT("/:id", admin, h.UpdatePricingMethod)
	}

	// ============ Пакетное создание (Batch) - только администратор ============
	batch := api.Group("/batch")
	batch.Use(admin)
	{
		batch.GET("/defaults", h.GetBatchDefaults)
		batch.POST("/services", h.BatchCreateServices)
		batch.POST("/services/validate", h.ValidateBatchServices)
		batch.POST("/pricing-methods", h.BatchCreatePricingMethods)
		batch.POST("/pricing-methods/validate", h.ValidateBatchPricingMethods)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.LoginUser)

		auth.GET("/profile", anyUser, h.AuthHandler.GetUserProfile)
		auth.POST("/logout", anyUser, h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
