package controller_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-analytics-backend/config"
	"log-analytics-backend/internal/controller"
	"log-analytics-backend/internal/detector"
	"log-analytics-backend/internal/dto"
	"log-analytics-backend/internal/parser"
	"log-analytics-backend/internal/pattern"
	"log-analytics-backend/internal/service"
	"log-analytics-backend/internal/store"
)

const apacheSample = `192.168.1.100 - - [10/Oct/2023:13:55:36] "GET /api/users HTTP/1.1" 200 1234
192.168.1.101 - - [10/Oct/2023:13:55:37] "POST /api/login HTTP/1.1" 401 567`

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Analysis.MaxInputBytes = 1024 * 1024
	cfg.Analysis.SampleSize = 20
	cfg.Analysis.DetectThreshold = 0.5
	cfg.Analysis.TopK = 10

	lib := pattern.NewLibrary()
	analysisStore := store.NewInMemoryAnalysisStore()
	analysisSvc := service.NewAnalysisService(
		detector.NewDetector(lib, cfg.Analysis.SampleSize, cfg.Analysis.DetectThreshold),
		parser.NewLineParser(lib),
		analysisStore,
		cfg,
	)
	filterSvc := service.NewFilterService(analysisStore, cfg)

	router := gin.New()
	controller.RegisterAnalysisRoutes(router, controller.NewAnalysisController(analysisSvc, filterSvc, analysisStore))
	return router
}

func analyzeText(t *testing.T, router *gin.Engine, content string) dto.AnalysisResponse {
	t.Helper()
	body, err := json.Marshal(dto.AnalyzeRequest{LogContent: content})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAnalyze_PastedContent(t *testing.T) {
	router := newTestRouter()
	resp := analyzeText(t, router, apacheSample)

	assert.NotEmpty(t, resp.AnalysisID)
	assert.Equal(t, "apache", resp.DetectedFormat)
	assert.Equal(t, 2, resp.TotalEntries)
	assert.Equal(t, 1, resp.WarningCount)
	assert.Equal(t, map[string]int{"200": 1, "401": 1}, resp.StatusCodes)
	assert.Len(t, resp.TopIPs, 2)
}

func TestAnalyze_FileUpload(t *testing.T) {
	router := newTestRouter()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("log_file", "access.log")
	require.NoError(t, err)
	_, err = part.Write([]byte(apacheSample))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("format", "nginx"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "nginx", resp.DetectedFormat, "declared format skips detection")
	assert.Equal(t, 2, resp.TotalEntries)
}

func TestAnalyze_BadInputs(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{
			name:        "Unknown Declared Format",
			contentType: "application/json",
			body:        `{"log_content": "x", "format": "klingon"}`,
		},
		{
			name:        "Binary Content",
			contentType: "application/json",
			body:        `{"log_content": "\u0000\u0000"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestFilter_Endpoint(t *testing.T) {
	router := newTestRouter()
	analysis := analyzeText(t, router, apacheSample)

	body := `{"status_code": 200}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/"+analysis.AnalysisID+"/filter", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalEntries)
	assert.Equal(t, map[string]int{"200": 1}, resp.StatusCodes)
	assert.Empty(t, resp.AnalysisID, "filtered views are not stored")
}

func TestFilter_NotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/nope/filter", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFilter_BadTimeFormat(t *testing.T) {
	router := newTestRouter()
	analysis := analyzeText(t, router, apacheSample)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses/"+analysis.AnalysisID+"/filter",
		strings.NewReader(`{"start_time": "yesterday-ish"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExport_Endpoint(t *testing.T) {
	router := newTestRouter()
	analysis := analyzeText(t, router, apacheSample)

	t.Run("CSV Download", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+analysis.AnalysisID+"/export?format=csv", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, w.Body.String(), "ANALYSIS SUMMARY")
	})

	t.Run("Unsupported Format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/"+analysis.AnalysisID+"/export?format=xml", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Unknown Analysis", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses/nope/export?format=json", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
