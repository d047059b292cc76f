package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailedStatus(t *testing.T) {
	s := FailedStatus("NoSuchKey")

	assert.Equal(t, DownloadStatus("FAILED:NoSuchKey"), s)
	assert.True(t, s.IsTerminal())
	assert.True(t, s.IsFailed())
	assert.Equal(t, "NoSuchKey", s.FailureCode())
}

func TestDownloadStatus_Predicates(t *testing.T) {
	tests := []struct {
		status   DownloadStatus
		terminal bool
		failed   bool
		code     string
	}{
		{StatusPending, false, false, ""},
		{StatusSuccess, true, false, ""},
		{FailedStatus("AccessDenied"), true, true, "AccessDenied"},
		{FailedStatus("Unknown"), true, true, "Unknown"},
		{"FAILED:", false, false, ""},
		{"failed:NoSuchKey", false, false, ""},
		{"", false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
			assert.Equal(t, tt.failed, tt.status.IsFailed())
			assert.Equal(t, tt.code, tt.status.FailureCode())
		})
	}
}
