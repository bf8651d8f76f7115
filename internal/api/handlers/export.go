package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jstittsworth/dfs-uploader/internal/roster"
	"github.com/jstittsworth/dfs-uploader/internal/services"
	"github.com/jstittsworth/dfs-uploader/pkg/config"
	"github.com/jstittsworth/dfs-uploader/pkg/utils"
)

type ExportHandler struct {
	cfg           *config.Config
	exportService *services.ExportService
}

func NewExportHandler(cfg *config.Config, exportService *services.ExportService) *ExportHandler {
	return &ExportHandler{
		cfg:           cfg,
		exportService: exportService,
	}
}

type exportRequest struct {
	Site    string         `json:"site" binding:"required"`
	Sport   string         `json:"sport" binding:"required"`
	Entries []roster.Entry `json:"entries" binding:"required,min=1"`
}

func (h *ExportHandler) sendPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, roster.ErrUnknownProfile):
		utils.SendError(c, http.StatusBadRequest,
			utils.NewAppError(utils.ErrCodeUnknownProfile, "Unsupported site/sport combination", err.Error()))
	case errors.Is(err, roster.ErrRosterSize):
		utils.SendError(c, http.StatusBadRequest,
			utils.NewAppError(utils.ErrCodeInvalidRoster, "Lineup does not match the roster size for this sport", err.Error()))
	default:
		utils.SendInternalError(c, "Failed to process lineups")
	}
}

// NormalizeLineups runs slot normalization and returns the rewritten,
// canonically ordered entries as JSON
func (h *ExportHandler) NormalizeLineups(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	normalized, err := h.exportService.NormalizeLineups(roster.Site(req.Site), roster.Sport(req.Sport), req.Entries)
	if err != nil {
		h.sendPipelineError(c, err)
		return
	}

	utils.SendSuccess(c, normalized)
}

// ExportLineups normalizes and pivots a batch into a submission table and
// returns it as a CSV attachment
func (h *ExportHandler) ExportLineups(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	lineups := roster.SplitLineups(req.Entries)
	if len(lineups) > h.cfg.MaxLineups {
		utils.SendValidationError(c, "Too many lineups",
			fmt.Sprintf("batch has %d lineups, maximum is %d", len(lineups), h.cfg.MaxLineups))
		return
	}

	site, sport := roster.Site(req.Site), roster.Sport(req.Sport)
	csvData, err := h.exportService.ExportCSV(site, sport, req.Entries)
	if err != nil {
		h.sendPipelineError(c, err)
		return
	}

	fileName := h.exportService.ExportFileName(site, sport)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	c.Data(http.StatusOK, "text/csv", csvData)
}

// BatchExport exports multiple lineups with per-lineup validation and
// returns the batch summary plus the submission table
func (h *ExportHandler) BatchExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.exportService.BatchExportLineups(roster.Site(req.Site), roster.Sport(req.Sport), req.Entries)
	if err != nil {
		h.sendPipelineError(c, err)
		return
	}

	if result.CSVData == nil {
		utils.SendError(c, http.StatusBadRequest,
			utils.NewAppError(utils.ErrCodeExport, "Failed to export lineups", fmt.Sprintf("%d errors occurred", len(result.Errors))))
		return
	}

	response := gin.H{
		"result":  result,
		"preview": string(result.CSVData),
	}

	if h.cfg.ExportDir != "" {
		path, err := h.exportService.SaveBatchExport(result, h.cfg.ExportDir)
		if err != nil {
			utils.SendInternalError(c, "Failed to save export file")
			return
		}
		response["path"] = path
	}

	utils.SendSuccess(c, response)
}

// GetExportFormats returns available export formats
func (h *ExportHandler) GetExportFormats(c *gin.Context) {
	sport := c.Query("sport")
	platform := c.Query("platform")

	formats := h.exportService.GetAvailableFormats()

	// Filter by sport/platform if provided
	if sport != "" || platform != "" {
		filtered := make([]services.ExportFormat, 0)
		for _, format := range formats {
			if (sport == "" || format.Sport == sport) &&
				(platform == "" || format.Platform == platform) {
				filtered = append(filtered, format)
			}
		}
		formats = filtered
	}

	utils.SendSuccess(c, formats)
}
