package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"

	"log-analytics-backend/internal/dto"
	"log-analytics-backend/internal/model"
)

// csvExporter renders the analysis as a sectioned CSV report: a summary
// block followed by one block per non-empty table.
type csvExporter struct{}

func NewCSV() Exporter {
	return &csvExporter{}
}

func (e *csvExporter) ContentType() string   { return "text/csv" }
func (e *csvExporter) FileExtension() string { return "csv" }

func (e *csvExporter) Export(resp *dto.AnalysisResponse) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	rows := [][]string{
		{"ANALYSIS SUMMARY"},
		{"Metric", "Value"},
		{"Total Log Entries", strconv.Itoa(resp.TotalEntries)},
		{"Error Count", strconv.Itoa(resp.ErrorCount)},
		{"Warning Count", strconv.Itoa(resp.WarningCount)},
		{"Info Count", strconv.Itoa(resp.InfoCount)},
		{"Log Format Detected", resp.DetectedFormat},
		{"Analyzed At", resp.AnalyzedAt.Format("2006-01-02 15:04:05")},
		{},
	}
	if err := writeAll(writer, rows); err != nil {
		return nil, err
	}

	if len(resp.StatusCodes) > 0 {
		if err := writeAll(writer, [][]string{{"HTTP Status Codes"}, {"Status Code", "Count"}}); err != nil {
			return nil, err
		}
		for _, entry := range sortedStatusCodes(resp.StatusCodes) {
			if err := writer.Write([]string{entry.Key, strconv.Itoa(entry.Count)}); err != nil {
				return nil, err
			}
		}
		if err := writer.Write(nil); err != nil {
			return nil, err
		}
	}

	sections := []struct {
		title   string
		keyName string
		entries []model.TableEntry
	}{
		{"Top IP Addresses", "IP Address", resp.TopIPs},
		{"Top URLs", "URL", resp.TopURLs},
		{"Top Hostnames", "Hostname", resp.TopHostnames},
		{"Top Processes", "Process", resp.TopProcesses},
		{"Top Process IDs", "Process ID", resp.TopProcessIDs},
		{"Top Interfaces", "Interface", resp.TopInterfaces},
		{"Top Facilities", "Facility", resp.TopFacilities},
	}
	for _, sec := range sections {
		if len(sec.entries) == 0 {
			continue
		}
		if err := writeAll(writer, [][]string{{sec.title}, {sec.keyName, "Count"}}); err != nil {
			return nil, err
		}
		for _, entry := range sec.entries {
			if err := writer.Write([]string{entry.Key, strconv.Itoa(entry.Count)}); err != nil {
				return nil, err
			}
		}
		if err := writer.Write(nil); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return b.Bytes(), nil
}

func writeAll(writer *csv.Writer, rows [][]string) error {
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func sortedStatusCodes(codes map[string]int) []model.TableEntry {
	entries := make([]model.TableEntry, 0, len(codes))
	for code, count := range codes {
		entries = append(entries, model.TableEntry{Key: code, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}
