package descriptions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetToolDescription(t *testing.T) {
	for _, name := range GetAllToolNames() {
		assert.NotEqual(t, "Tool description not available", GetToolDescription(name), name)
	}
	assert.Equal(t, "Tool description not available", GetToolDescription("pdf_read_file"))
}

func TestGetAllToolNames(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"document_analyze",
		"document_correct",
		"document_analyze_file",
		"document_analyze_directory",
		"document_validate_file",
		"document_search_directory",
		"analyzer_server_info",
	}, GetAllToolNames())
}
