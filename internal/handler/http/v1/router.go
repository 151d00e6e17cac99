package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	authed := api.Group("")
	authed.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Построение маршрутов ограничено по частоте для каждого клиента
	navigation := authed.Group("/navigation")
	navigation.Use(RateLimitMiddleware(h.cfg.RateLimitRPS, h.cfg.RateLimitBurst))
	{
		navigation.POST("/safe-route", h.planSafeRoute)
		navigation.POST("/safe-route/geojson", h.planSafeRouteGeoJSON)
	}

	authed.POST("/location/risk", h.assessLocation)
	authed.GET("/risk/classify", h.classifyRisk)
	authed.GET("/me/history", h.getHistory)

	// Маршруты для управления зонами риска (CRUD)
	hazards := authed.Group("/hazards")
	{
		hazards.POST("", h.createHazard)
		hazards.GET("", h.listHazards)
		hazards.GET("/stats", h.getStats)
		hazards.GET("/:id", h.getHazard)
		hazards.PUT("/:id", h.updateHazard)
		hazards.DELETE("/:id", h.deleteHazard)
	}
}
