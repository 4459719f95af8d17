package model

import "time"

// TableEntry is one row of a top-K frequency table.
type TableEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// AnalysisResult is the terminal aggregate of one analysis run. Tables are
// already truncated to the configured top-K, sorted descending by count
// with ties broken by first-seen order. Tables inapplicable to the
// detected format are nil.
type AnalysisResult struct {
	TotalEntries   int            `json:"total_entries"`
	ErrorCount     int            `json:"error_count"`
	WarningCount   int            `json:"warning_count"`
	InfoCount      int            `json:"info_count"`
	DetectedFormat LogFormat      `json:"detected_format"`
	StatusCodes    map[string]int `json:"status_codes,omitempty"`
	TopIPs         []TableEntry   `json:"top_ips,omitempty"`
	TopURLs        []TableEntry   `json:"top_urls,omitempty"`
	TopHostnames   []TableEntry   `json:"top_hostnames,omitempty"`
	TopProcesses   []TableEntry   `json:"top_processes,omitempty"`
	TopProcessIDs  []TableEntry   `json:"top_process_ids,omitempty"`
	TopInterfaces  []TableEntry   `json:"top_interfaces,omitempty"`
	TopFacilities  []TableEntry   `json:"top_facilities,omitempty"`
	AnalyzedAt     time.Time      `json:"analyzed_at"`
}
