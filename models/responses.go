package models

// LinkResponse is returned by the download endpoint on success.
type LinkResponse struct {
	PresignedURL string `json:"presigned_url"`
	ExpiresIn    int    `json:"expires_in"`
}

// ErrorResponse is the generic failure body. It never carries provider detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProbeResponse is returned by the liveness and readiness probes.
type ProbeResponse struct {
	Status string `json:"status"`
	System string `json:"system,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// DownloadLogsResponse is returned by the admin listing endpoint.
type DownloadLogsResponse struct {
	// DownloadLogs are ordered by timestamp, newest first.
	DownloadLogs []DownloadLog `json:"download_logs"`

	// Length is the number of entries in DownloadLogs.
	Length int `json:"length"`
}
