package document

import (
	"errors"

	"github.com/a3tai/mcp-uzdoc-analyzer/internal/intelligence"
)

var (
	// ErrEmptyText is returned when there is no text to analyze
	ErrEmptyText = errors.New("text cannot be empty")
	// ErrContentTooLarge is returned when text exceeds the configured content cap
	ErrContentTooLarge = errors.New("content too large")
	// ErrUnsupportedFile is returned for files the reader cannot extract text from
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// Supported document formats
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

// FileInfo represents information about a supported document file
type FileInfo struct {
	Path         string `json:"path"`
	Name         string `json:"name"`
	Format       string `json:"format"`
	Size         int64  `json:"size"`
	ModifiedTime string `json:"modified_time"`
}

// Request Types

// AnalyzeTextRequest represents a request to analyze raw text
type AnalyzeTextRequest struct {
	Text string `json:"text"`
}

// CorrectTextRequest represents a request to produce a corrected draft
type CorrectTextRequest struct {
	Text string `json:"text"`
}

// ReadFileRequest represents a request to read a document file
type ReadFileRequest struct {
	Path string `json:"path"`
}

// AnalyzeFileRequest represents a request to analyze a document file
type AnalyzeFileRequest struct {
	Path string `json:"path"`
}

// ValidateFileRequest represents a request to validate a document file
type ValidateFileRequest struct {
	Path string `json:"path"`
}

// SearchDirectoryRequest represents a request to search for documents in a directory
type SearchDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// AnalyzeDirectoryRequest represents a request to analyze every document in a directory
type AnalyzeDirectoryRequest struct {
	Directory string `json:"directory"`
	Query     string `json:"query"`
}

// Response Types

// ReadFileResult represents the extracted text of a document file
type ReadFileResult struct {
	Content   string `json:"content"`
	Path      string `json:"path"`
	Format    string `json:"format"`
	Pages     int    `json:"pages"`
	Size      int64  `json:"size"`
	Truncated bool   `json:"truncated"`
}

// ValidateFileResult represents the result of a validation operation
type ValidateFileResult struct {
	Valid   bool   `json:"valid"`
	Path    string `json:"path"`
	Format  string `json:"format,omitempty"`
	Pages   int    `json:"pages,omitempty"`
	Message string `json:"message,omitempty"`
}

// SearchDirectoryResult represents the result of a directory search
type SearchDirectoryResult struct {
	Files       []FileInfo `json:"files"`
	TotalCount  int        `json:"total_count"`
	Directory   string     `json:"directory"`
	SearchQuery string     `json:"search_query,omitempty"`
}

// CorrectTextResult holds a corrected draft alongside its input
type CorrectTextResult struct {
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Changed   bool   `json:"changed"`
}

// DocumentAnalysisResult is the analysis of a single document file
type DocumentAnalysisResult struct {
	Path      string                      `json:"path"`
	Format    string                      `json:"format"`
	Size      int64                       `json:"size"`
	Pages     int                         `json:"pages"`
	Truncated bool                        `json:"truncated"`
	Analysis  intelligence.AnalysisResult `json:"analysis"`
}

// FileError records a file that could not be analyzed in a batch
type FileError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// BatchAnalysisResult aggregates the analysis of every document in a directory
type BatchAnalysisResult struct {
	ID                string                   `json:"id"`
	Directory         string                   `json:"directory"`
	Query             string                   `json:"query,omitempty"`
	TotalFiles        int                      `json:"total_files"`
	Analyzed          int                      `json:"analyzed"`
	Failed            int                      `json:"failed"`
	DurationMs        int64                    `json:"duration_ms"`
	Results           []DocumentAnalysisResult `json:"results"`
	Errors            []FileError              `json:"errors,omitempty"`
	ByDocType         map[string]int           `json:"by_doc_type"`
	ByUrgency         map[string]int           `json:"by_urgency"`
	ConfidentialFiles int                      `json:"confidential_files"`
}

// ToolInfo represents information about an available tool
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
	Parameters  string `json:"parameters"`
}

// ServerInfoResult represents server information and usage guidance
type ServerInfoResult struct {
	ServerName        string     `json:"server_name"`
	Version           string     `json:"version"`
	DefaultDirectory  string     `json:"default_directory"`
	MaxFileSize       int64      `json:"max_file_size"`
	MaxContentLength  int        `json:"max_content_length"`
	Workers           int        `json:"workers"`
	SupportedFormats  []string   `json:"supported_formats"`
	DocumentTypes     []string   `json:"document_types"`
	AvailableTools    []ToolInfo `json:"available_tools"`
	DirectoryContents []FileInfo `json:"directory_contents"`
	UsageGuidance     string     `json:"usage_guidance"`
}
