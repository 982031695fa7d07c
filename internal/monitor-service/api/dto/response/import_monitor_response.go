package response

type ImportMonitorResponse struct {
	ImportedCount    int      `json:"imported_count"`
	ImportedMonitors []string `json:"imported_monitors,omitempty"`
	FailedCount      int      `json:"failed_count"`
	FailedMonitors   []string `json:"failed_monitors,omitempty"`
}
