package document

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/a3tai/mcp-uzdoc-analyzer/internal/document/security"
	"github.com/a3tai/mcp-uzdoc-analyzer/internal/intelligence"
)

// DefaultWorkers is the batch analysis concurrency when none is configured
const DefaultWorkers = 4

// ServiceConfig holds the limits and locations the service enforces
type ServiceConfig struct {
	Directory        string
	MaxFileSize      int64
	MaxContentLength int
	Workers          int
	Rules            *intelligence.RuleSet
}

// Service handles document analysis by orchestrating the reader, validator,
// search and analyzer components inside a sandboxed directory
type Service struct {
	maxFileSize      int64
	maxContentLength int
	workers          int
	reader           *Reader
	validator        *Validator
	search           *Search
	analyzer         *intelligence.Analyzer
	pathValidator    *security.PathValidator
	directoryCache   *DirectoryCache
}

// NewService creates a new document service with all components
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.MaxFileSize <= 0 {
		return nil, fmt.Errorf("maxFileSize must be greater than 0")
	}
	if cfg.MaxContentLength < 0 {
		return nil, fmt.Errorf("maxContentLength cannot be negative")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}

	pathValidator, err := security.NewPathValidator(cfg.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to create path validator: %w", err)
	}

	analyzerConfig := intelligence.DefaultAnalyzerConfig()
	analyzerConfig.MaxContentLength = cfg.MaxContentLength

	return &Service{
		maxFileSize:      cfg.MaxFileSize,
		maxContentLength: cfg.MaxContentLength,
		workers:          cfg.Workers,
		reader:           NewReader(cfg.MaxFileSize),
		validator:        NewValidator(cfg.MaxFileSize),
		search:           NewSearch(cfg.MaxFileSize),
		analyzer:         intelligence.NewAnalyzerWithConfig(analyzerConfig, cfg.Rules),
		pathValidator:    pathValidator,
		directoryCache:   NewDirectoryCache(DefaultDirectoryCacheTTL),
	}, nil
}

// checkText enforces a non-empty input within the content cap
func (s *Service) checkText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if s.maxContentLength > 0 {
		if n := utf8.RuneCountInString(text); n > s.maxContentLength {
			return fmt.Errorf("%w: %d characters (max: %d)", ErrContentTooLarge, n, s.maxContentLength)
		}
	}
	return nil
}

// AnalyzeText analyzes raw document text
func (s *Service) AnalyzeText(req AnalyzeTextRequest) (*intelligence.AnalysisResult, error) {
	if err := s.checkText(req.Text); err != nil {
		return nil, err
	}
	result := s.analyzer.Analyze(req.Text)
	return &result, nil
}

// CorrectText returns a corrected draft of raw document text
func (s *Service) CorrectText(req CorrectTextRequest) (*CorrectTextResult, error) {
	if err := s.checkText(req.Text); err != nil {
		return nil, err
	}
	corrected := s.analyzer.Correct(req.Text)
	return &CorrectTextResult{
		Original:  req.Text,
		Corrected: corrected,
		Changed:   corrected != req.Text,
	}, nil
}

// ReadFile extracts the text of a document inside the configured directory
func (s *Service) ReadFile(req ReadFileRequest) (*ReadFileResult, error) {
	path, err := s.pathValidator.ResolvePath(req.Path)
	if err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	req.Path = path
	return s.reader.ReadFile(req)
}

// AnalyzeFile reads and analyzes a document inside the configured directory
func (s *Service) AnalyzeFile(ctx context.Context, req AnalyzeFileRequest) (*DocumentAnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.pathValidator.ResolvePath(req.Path)
	if err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	return s.analyzeFile(path)
}

// analyzeFile analyzes an already validated path
func (s *Service) analyzeFile(path string) (*DocumentAnalysisResult, error) {
	content, err := s.reader.ReadFile(ReadFileRequest{Path: path})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content.Content) == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptyText, path)
	}

	truncated := content.Truncated ||
		(s.maxContentLength > 0 && utf8.RuneCountInString(content.Content) > s.maxContentLength)

	return &DocumentAnalysisResult{
		Path:      content.Path,
		Format:    content.Format,
		Size:      content.Size,
		Pages:     content.Pages,
		Truncated: truncated,
		Analysis:  s.analyzer.Analyze(content.Content),
	}, nil
}

// ValidateFile checks whether a document inside the configured directory can be analyzed
func (s *Service) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	path, err := s.pathValidator.ResolvePath(req.Path)
	if err != nil {
		return nil, fmt.Errorf("security validation failed: %w", err)
	}
	req.Path = path
	return s.validator.ValidateFile(req)
}

// SearchDirectory searches for supported documents. An empty directory
// selects the configured one.
func (s *Service) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	directory, err := s.resolveDirectory(req.Directory)
	if err != nil {
		return nil, err
	}
	req.Directory = directory
	return s.search.SearchDirectory(req)
}

func (s *Service) resolveDirectory(directory string) (string, error) {
	if directory == "" {
		return s.pathValidator.GetConfiguredDirectory(), nil
	}
	if err := s.pathValidator.ValidateDirectory(directory); err != nil {
		return "", fmt.Errorf("security validation failed: %w", err)
	}
	return s.pathValidator.ResolvePath(directory)
}

// Analyzer returns the analyzer the service evaluates documents with
func (s *Service) Analyzer() *intelligence.Analyzer {
	return s.analyzer
}

// GetMaxFileSize returns the maximum file size limit
func (s *Service) GetMaxFileSize() int64 {
	return s.maxFileSize
}

// GetConfiguredDirectory returns the sandbox directory
func (s *Service) GetConfiguredDirectory() string {
	return s.pathValidator.GetConfiguredDirectory()
}
