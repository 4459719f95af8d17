package export

import (
	"encoding/json"
	"time"

	"log-analytics-backend/internal/dto"
	"log-analytics-backend/internal/model"
)

// jsonExporter wraps the analysis response in an export envelope with
// report metadata, the way downstream tooling expects to re-import it.
type jsonExporter struct{}

func NewJSON() Exporter {
	return &jsonExporter{}
}

func (e *jsonExporter) ContentType() string   { return "application/json" }
func (e *jsonExporter) FileExtension() string { return "json" }

type jsonEnvelope struct {
	Metadata jsonMetadata          `json:"metadata"`
	Summary  jsonSummary           `json:"summary"`
	Web      *jsonWebAnalysis      `json:"web_server_analysis,omitempty"`
	Network  *jsonNetworkAnalysis  `json:"network_device_analysis,omitempty"`
	Raw      *dto.AnalysisResponse `json:"raw_analysis_data"`
}

type jsonMetadata struct {
	ExportTimestamp time.Time `json:"export_timestamp"`
	ReportType      string    `json:"report_type"`
	AnalysisID      string    `json:"analysis_id,omitempty"`
	DetectedFormat  string    `json:"detected_format"`
}

type jsonSummary struct {
	TotalEntries   int       `json:"total_entries"`
	ErrorCount     int       `json:"error_count"`
	WarningCount   int       `json:"warning_count"`
	InfoCount      int       `json:"info_count"`
	DetectedFormat string    `json:"detected_format"`
	AnalyzedAt     time.Time `json:"analyzed_at"`
}

type jsonWebAnalysis struct {
	TopIPAddresses []model.TableEntry `json:"top_ip_addresses,omitempty"`
	StatusCodes    map[string]int     `json:"status_codes,omitempty"`
	TopURLs        []model.TableEntry `json:"top_urls,omitempty"`
}

type jsonNetworkAnalysis struct {
	TopInterfaces []model.TableEntry `json:"top_interfaces,omitempty"`
	TopFacilities []model.TableEntry `json:"top_facilities,omitempty"`
	TopHostnames  []model.TableEntry `json:"top_hostnames,omitempty"`
	TopProcesses  []model.TableEntry `json:"top_processes,omitempty"`
	TopProcessIDs []model.TableEntry `json:"top_process_ids,omitempty"`
}

func (e *jsonExporter) Export(resp *dto.AnalysisResponse) ([]byte, error) {
	envelope := jsonEnvelope{
		Metadata: jsonMetadata{
			ExportTimestamp: time.Now().UTC(),
			ReportType:      "Log Analysis Report",
			AnalysisID:      resp.AnalysisID,
			DetectedFormat:  resp.DetectedFormat,
		},
		Summary: jsonSummary{
			TotalEntries:   resp.TotalEntries,
			ErrorCount:     resp.ErrorCount,
			WarningCount:   resp.WarningCount,
			InfoCount:      resp.InfoCount,
			DetectedFormat: resp.DetectedFormat,
			AnalyzedAt:     resp.AnalyzedAt,
		},
		Raw: resp,
	}

	if len(resp.TopIPs) > 0 || len(resp.StatusCodes) > 0 || len(resp.TopURLs) > 0 {
		envelope.Web = &jsonWebAnalysis{
			TopIPAddresses: resp.TopIPs,
			StatusCodes:    resp.StatusCodes,
			TopURLs:        resp.TopURLs,
		}
	}
	if len(resp.TopInterfaces) > 0 || len(resp.TopHostnames) > 0 ||
		len(resp.TopFacilities) > 0 || len(resp.TopProcesses) > 0 || len(resp.TopProcessIDs) > 0 {
		envelope.Network = &jsonNetworkAnalysis{
			TopInterfaces: resp.TopInterfaces,
			TopFacilities: resp.TopFacilities,
			TopHostnames:  resp.TopHostnames,
			TopProcesses:  resp.TopProcesses,
			TopProcessIDs: resp.TopProcessIDs,
		}
	}

	return json.MarshalIndent(envelope, "", "  ")
}
