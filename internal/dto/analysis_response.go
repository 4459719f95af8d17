package dto

import (
	"time"

	"log-analytics-backend/internal/model"
)

// AnalysisResponse is the boundary shape of one analysis. Tables that are
// empty or inapplicable to the detected format are omitted entirely.
type AnalysisResponse struct {
	AnalysisID     string             `json:"analysis_id,omitempty"`
	TotalEntries   int                `json:"total_entries"`
	ErrorCount     int                `json:"error_count"`
	WarningCount   int                `json:"warning_count"`
	InfoCount      int                `json:"info_count"`
	DetectedFormat string             `json:"detected_format"`
	AnalyzedAt     time.Time          `json:"analyzed_at"`
	StatusCodes    map[string]int     `json:"status_codes,omitempty"`
	TopIPs         []model.TableEntry `json:"top_ips,omitempty"`
	TopURLs        []model.TableEntry `json:"top_urls,omitempty"`
	TopHostnames   []model.TableEntry `json:"top_hostnames,omitempty"`
	TopProcesses   []model.TableEntry `json:"top_processes,omitempty"`
	TopProcessIDs  []model.TableEntry `json:"top_process_ids,omitempty"`
	TopInterfaces  []model.TableEntry `json:"top_interfaces,omitempty"`
	TopFacilities  []model.TableEntry `json:"top_facilities,omitempty"`
}

// NewAnalysisResponse flattens an AnalysisResult into the boundary
// contract. The id is optional; filtered views are returned without one.
func NewAnalysisResponse(id string, res *model.AnalysisResult) *AnalysisResponse {
	return &AnalysisResponse{
		AnalysisID:     id,
		TotalEntries:   res.TotalEntries,
		ErrorCount:     res.ErrorCount,
		WarningCount:   res.WarningCount,
		InfoCount:      res.InfoCount,
		DetectedFormat: string(res.DetectedFormat),
		AnalyzedAt:     res.AnalyzedAt,
		StatusCodes:    res.StatusCodes,
		TopIPs:         res.TopIPs,
		TopURLs:        res.TopURLs,
		TopHostnames:   res.TopHostnames,
		TopProcesses:   res.TopProcesses,
		TopProcessIDs:  res.TopProcessIDs,
		TopInterfaces:  res.TopInterfaces,
		TopFacilities:  res.TopFacilities,
	}
}
