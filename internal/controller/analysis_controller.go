package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"log-analytics-backend/internal/dto"
	"log-analytics-backend/internal/export"
	"log-analytics-backend/internal/model"
	"log-analytics-backend/internal/service"
	"log-analytics-backend/internal/store"
	"log-analytics-backend/internal/util"
)

type AnalysisController struct {
	analysisService service.AnalysisService
	filterService   service.FilterService
	analysisStore   store.AnalysisStore
}

func NewAnalysisController(
	analysisService service.AnalysisService,
	filterService service.FilterService,
	analysisStore store.AnalysisStore,
) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
		filterService:   filterService,
		analysisStore:   analysisStore,
	}
}

func RegisterAnalysisRoutes(router *gin.Engine, controller *AnalysisController) {
	v1 := router.Group("/api/v1/analyses")
	{
		v1.POST("", controller.Analyze)
		v1.POST("/:id/filter", controller.Filter)
		v1.GET("/:id/export", controller.Export)
	}
}

// Analyze godoc
// @Summary      Analyze a log file or pasted log text
// @Description  Accepts a multipart file upload (field "log_file") or a form/JSON body with "log_content". The log format is auto-detected unless declared via "format".
// @Tags         analyses
// @Accept       mpfd
// @Accept       json
// @Produce      json
// @Param        log_file     formData  file    false  "Log file to analyze"
// @Param        log_content  formData  string  false  "Pasted log text (used when no file is uploaded)"
// @Param        format       formData  string  false  "Declared log format; skips auto-detection"  Enums(apache, nginx, syslog, mikrotik, cisco, juniper, generic)
// @Success      200          {object}  dto.AnalysisResponse "Analysis result"
// @Failure      400          {object}  model.Response "Empty, oversized, binary, or unknown-format input"
// @Failure      500          {object}  model.Response "Internal server error"
// @Router       /api/v1/analyses [post]
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	content, declaredFormat, err := readAnalyzeInput(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}

	analysis, err := c.analysisService.Analyze(ctx.Request.Context(), content, declaredFormat)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInputTooLarge),
			errors.Is(err, service.ErrUnreadableInput),
			errors.Is(err, service.ErrUnknownLogFormat):
			ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		default:
			log.Error().Err(err).Msg("Error analyzing logs")
			ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to analyze logs", nil))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAnalysisResponse(analysis.ID, analysis.Result))
}

// Filter godoc
// @Summary      Filter a stored analysis
// @Description  Re-aggregates the stored analysis over the records matching every non-empty criterion. Statistics are recomputed, never approximated.
// @Tags         analyses
// @Accept       json
// @Produce      json
// @Param        id      path      string             true  "Analysis ID"
// @Param        filter  body      dto.FilterRequest  true  "Filter criteria"
// @Success      200     {object}  dto.AnalysisResponse "Filtered analysis result"
// @Failure      400     {object}  model.Response "Invalid request body or time format"
// @Failure      404     {object}  model.Response "Analysis not found"
// @Failure      500     {object}  model.Response "Internal server error"
// @Router       /api/v1/analyses/{id}/filter [post]
func (c *AnalysisController) Filter(ctx *gin.Context) {
	var req dto.FilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	criteria, err := buildFilterCriteria(req)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}

	result, err := c.filterService.Filter(ctx.Request.Context(), ctx.Param("id"), criteria)
	if err != nil {
		if errors.Is(err, store.ErrAnalysisNotFound) {
			ctx.JSON(http.StatusNotFound, model.NewResponse("Analysis not found", nil))
			return
		}
		log.Error().Err(err).Msg("Error filtering analysis")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to filter analysis", nil))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAnalysisResponse("", result))
}

// Export godoc
// @Summary      Export a stored analysis
// @Description  Downloads the analysis result rendered as CSV or JSON.
// @Tags         analyses
// @Produce      json
// @Produce      text/csv
// @Param        id      path      string  true  "Analysis ID"
// @Param        format  query     string  true  "Export format" Enums(csv, json)
// @Success      200     {file}    file "Rendered report"
// @Failure      400     {object}  model.Response "Unsupported export format"
// @Failure      404     {object}  model.Response "Analysis not found"
// @Failure      500     {object}  model.Response "Internal server error"
// @Router       /api/v1/analyses/{id}/export [get]
func (c *AnalysisController) Export(ctx *gin.Context) {
	exporter, err := export.ForFormat(ctx.Query("format"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
		return
	}

	analysis, err := c.analysisStore.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrAnalysisNotFound) {
			ctx.JSON(http.StatusNotFound, model.NewResponse("Analysis not found", nil))
			return
		}
		log.Error().Err(err).Msg("Error loading analysis for export")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to load analysis", nil))
		return
	}

	body, err := exporter.Export(dto.NewAnalysisResponse(analysis.ID, analysis.Result))
	if err != nil {
		log.Error().Err(err).Msg("Error rendering export")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Failed to render export", nil))
		return
	}

	filename := fmt.Sprintf("log_analysis_%s.%s", time.Now().UTC().Format("20060102_150405"), exporter.FileExtension())
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, exporter.ContentType(), body)
}

// readAnalyzeInput pulls the raw log text out of the request: an uploaded
// file wins over pasted content.
func readAnalyzeInput(ctx *gin.Context) ([]byte, string, error) {
	if file, err := ctx.FormFile("log_file"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
		}
		defer f.Close()
		content, err := io.ReadAll(f)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
		}
		return content, ctx.PostForm("format"), nil
	}

	var req dto.AnalyzeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		return nil, "", errors.New("no log content provided")
	}
	return []byte(req.LogContent), req.Format, nil
}

func buildFilterCriteria(req dto.FilterRequest) (service.FilterCriteria, error) {
	criteria := service.FilterCriteria{
		Source:     req.Source,
		URL:        req.URL,
		StatusCode: req.StatusCode,
		Search:     req.Search,
	}
	if req.StartTime != "" {
		t, err := util.ParseTimeFlexible(req.StartTime)
		if err != nil {
			return criteria, errors.New("invalid start_time format. Use ISO 8601 or epoch milliseconds")
		}
		criteria.StartTime = t
	}
	if req.EndTime != "" {
		t, err := util.ParseTimeFlexible(req.EndTime)
		if err != nil {
			return criteria, errors.New("invalid end_time format. Use ISO 8601 or epoch milliseconds")
		}
		criteria.EndTime = t
	}
	if !criteria.StartTime.IsZero() && !criteria.EndTime.IsZero() && criteria.EndTime.Before(criteria.StartTime) {
		return criteria, errors.New("end_time cannot be before start_time")
	}
	return criteria, nil
}
