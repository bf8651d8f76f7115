package api

import (
	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/dfs-uploader/internal/api/handlers"
	"github.com/jstittsworth/dfs-uploader/internal/services"
	"github.com/jstittsworth/dfs-uploader/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, cfg *config.Config, exportService *services.ExportService) {
	exportHandler := handlers.NewExportHandler(cfg, exportService)

	// Normalization endpoints
	group.POST("/normalize", exportHandler.NormalizeLineups)

	// Export endpoints
	group.POST("/export", exportHandler.ExportLineups)
	group.POST("/export/batch", exportHandler.BatchExport)
	group.GET("/export/formats", exportHandler.GetExportFormats)
}
