package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_ValidateFile(t *testing.T) {
	dir := t.TempDir()
	textPath := writeFile(t, dir, "xat.txt", []byte("Hurmatli hamkasblar"))
	emptyPath := writeFile(t, dir, "bosh.txt", nil)
	binaryPath := writeFile(t, dir, "buzuq.txt", []byte{0xff, 0xfe, 0x00})
	pdfPath := writeFile(t, dir, "buyruq.pdf", buildPDF("Birinchi sahifa", "Ikkinchi sahifa"))
	fakePDFPath := writeFile(t, dir, "soxta.pdf", []byte("bu pdf emas"))
	docxPath := writeFile(t, dir, "hisobot.docx", []byte("PK"))
	largePath := writeFile(t, dir, "katta.md", []byte(strings.Repeat("a", testMaxFileSize+1)))

	validator := NewValidator(testMaxFileSize)

	tests := []struct {
		name    string
		path    string
		valid   bool
		pages   int
		message string
	}{
		{name: "text file", path: textPath, valid: true, pages: 1},
		{name: "pdf file", path: pdfPath, valid: true, pages: 2},
		{name: "empty path", path: "", message: "path cannot be empty"},
		{name: "missing file", path: dir + "/yoq.txt", message: "file does not exist"},
		{name: "directory", path: dir, message: "directory"},
		{name: "empty file", path: emptyPath, message: "file is empty"},
		{name: "binary text", path: binaryPath, message: "not valid UTF-8"},
		{name: "fake pdf", path: fakePDFPath, message: "invalid PDF"},
		{name: "unsupported", path: docxPath, message: "unsupported file type"},
		{name: "too large", path: largePath, message: "file too large"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := validator.ValidateFile(ValidateFileRequest{Path: tt.path})
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			assert.Equal(t, tt.path, result.Path)
			if tt.valid {
				assert.Equal(t, tt.pages, result.Pages)
				assert.Empty(t, result.Message)
			} else {
				assert.Contains(t, result.Message, tt.message)
			}
		})
	}
}

func TestValidator_UTF8AcrossSniffBoundary(t *testing.T) {
	dir := t.TempDir()
	// Place a two-byte rune across the sniff boundary
	data := strings.Repeat("a", sniffSize-1) + "ʻ" + "bek"
	path := writeFile(t, dir, "chegara.txt", []byte(data))

	result, err := NewValidator(testMaxFileSize).ValidateFile(ValidateFileRequest{Path: path})
	require.NoError(t, err)
	assert.True(t, result.Valid, result.Message)
}
