package dto

// AnalyzeRequest is the pasted-text form of an analysis submission. File
// uploads arrive as multipart form data and are read by the controller.
type AnalyzeRequest struct {
	LogContent string `json:"log_content" form:"log_content"`
	Format     string `json:"format" form:"format"` // empty = auto-detect
}

// FilterRequest narrows a stored analysis to the records matching every
// non-empty criterion. Times are ISO 8601 or epoch milliseconds.
type FilterRequest struct {
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Source     string `json:"source"`      // substring match on IP or hostname
	URL        string `json:"url"`         // substring match
	StatusCode int    `json:"status_code"` // exact match, 0 = unset
	Search     string `json:"search"`      // substring match on the raw line
}
