package httpt

import (
	"net/http"

	_ "freightqa/docs" // for swagger

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Freight Data Quality API
// @version         1.0
// @description     Shape validation of shippers, bookings, demand predictions and routes.
// @contact.name    API Support
// @contact.email   support@example.com
// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html
// @host            localhost:8080
// @BasePath        /api/v1
// @schemes         http https
func (h *Handler) setupRoutes() {
	h.router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	if h.health != nil {
		h.router.GET("/live", gin.WrapH(h.health))
		h.router.GET("/ready", gin.WrapH(h.health))
	}

	api := h.router.Group("/api/v1")

	validate := api.Group("/validate", h.bodyLimitMiddleware())
	{
		validate.POST("/shippers", h.validateShipperHandler)
		validate.POST("/bookings", h.validateBookingHandler)
		validate.POST("/predictions", h.validatePredictionHandler)
		validate.POST("/routes", h.validateRouteHandler)
		validate.POST("/batch", h.validateBatchHandler)
	}

	reports := api.Group("/reports")
	{
		reports.GET("", h.listReportsHandler)
		reports.GET("/stats", h.statsHandler)
		reports.GET("/:report_id", h.getReportHandler)
	}

	api.GET("/samples/:kind", h.sampleHandler)

	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
