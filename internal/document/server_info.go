package document

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/a3tai/mcp-uzdoc-analyzer/internal/descriptions"
)

const (
	// DefaultDirectoryCacheTTL is how long a directory listing is reused
	DefaultDirectoryCacheTTL = 5 * time.Minute

	serverInfoFileLimit = 100
	serverInfoScanLimit = 3 * time.Second
)

// DirectoryCache provides TTL-based caching for directory listings
type DirectoryCache struct {
	entries map[string]cacheEntry
	ttl     time.Duration
	mu      sync.RWMutex
}

type cacheEntry struct {
	files      []FileInfo
	lastUpdate time.Time
}

// NewDirectoryCache creates a new directory cache with the specified TTL
func NewDirectoryCache(ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get returns the cached listing for a directory if it has not expired
func (c *DirectoryCache) Get(path string) ([]FileInfo, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[path]
	if !ok || time.Since(entry.lastUpdate) > c.ttl {
		return nil, false
	}
	return entry.files, true
}

// Set stores a directory listing
func (c *DirectoryCache) Set(path string, files []FileInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = cacheEntry{files: files, lastUpdate: time.Now()}
}

// Clear removes every cached listing
func (c *DirectoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// ServerInfo returns server capabilities, limits and the configured
// directory contents. A slow or failing directory scan yields an empty listing.
func (s *Service) ServerInfo(ctx context.Context, serverName, version string) (*ServerInfoResult, error) {
	directory := s.pathValidator.GetConfiguredDirectory()

	return &ServerInfoResult{
		ServerName:        serverName,
		Version:           version,
		DefaultDirectory:  directory,
		MaxFileSize:       s.maxFileSize,
		MaxContentLength:  s.maxContentLength,
		Workers:           s.workers,
		SupportedFormats:  SupportedExtensions(),
		DocumentTypes:     s.documentTypes(),
		AvailableTools:    availableTools(),
		DirectoryContents: s.directoryContents(ctx, directory),
		UsageGuidance:     s.usageGuidance(),
	}, nil
}

func (s *Service) directoryContents(ctx context.Context, directory string) []FileInfo {
	if files, ok := s.directoryCache.Get(directory); ok {
		return files
	}

	scanCtx, cancel := context.WithTimeout(ctx, serverInfoScanLimit)
	defer cancel()

	resultCh := make(chan []FileInfo, 1)
	go func() {
		files, err := s.search.FindDocumentsLimited(directory, serverInfoFileLimit)
		if err != nil {
			files = []FileInfo{}
		}
		resultCh <- files
	}()

	select {
	case files := <-resultCh:
		s.directoryCache.Set(directory, files)
		return files
	case <-scanCtx.Done():
		return []FileInfo{}
	}
}

func (s *Service) documentTypes() []string {
	buckets := s.analyzer.Rules().DocumentTypes
	names := make([]string, 0, len(buckets))
	for _, b := range buckets {
		names = append(names, b.Name)
	}
	return names
}

// availableTools returns the tools exposed by the server
func availableTools() []ToolInfo {
	const pathParam = "path (required): Path to a .txt, .md or .pdf file (absolute or relative to the document directory)"

	return []ToolInfo{
		{
			Name:        "document_analyze",
			Description: descriptions.GetToolDescription("document_analyze"),
			Usage:       "Classify and review document text passed directly.",
			Parameters:  "text (required): Document text in Uzbek (Latin script)",
		},
		{
			Name:        "document_correct",
			Description: descriptions.GetToolDescription("document_correct"),
			Usage:       "Get a corrected draft with known misspellings and punctuation spacing fixed.",
			Parameters:  "text (required): Document text to correct",
		},
		{
			Name:        "document_analyze_file",
			Description: descriptions.GetToolDescription("document_analyze_file"),
			Usage:       "Analyze a document file stored in the document directory.",
			Parameters:  pathParam,
		},
		{
			Name:        "document_analyze_directory",
			Description: descriptions.GetToolDescription("document_analyze_directory"),
			Usage:       "Analyze every supported document in a directory and summarize the batch.",
			Parameters: "directory (optional): Directory to analyze (uses default if empty), " +
				"query (optional): File-name filter",
		},
		{
			Name:        "document_validate_file",
			Description: descriptions.GetToolDescription("document_validate_file"),
			Usage:       "Check a file can be analyzed before processing it.",
			Parameters:  pathParam,
		},
		{
			Name:        "document_search_directory",
			Description: descriptions.GetToolDescription("document_search_directory"),
			Usage:       "Find supported documents, optionally filtered by a fuzzy file-name query.",
			Parameters: "directory (optional): Directory path to search (uses default if empty), " +
				"query (optional): Search query for fuzzy matching",
		},
		{
			Name:        "analyzer_server_info",
			Description: descriptions.GetToolDescription("analyzer_server_info"),
			Usage:       "Discover capabilities, limits and available documents.",
			Parameters:  "none",
		},
	}
}

// usageGuidance returns the usage guide shown by the server info tool
func (s *Service) usageGuidance() string {
	return fmt.Sprintf(`Uzbek Document Analyzer Usage Guide:

1. START WITH DISCOVERY:
   - Use 'document_search_directory' to find available documents
   - Use 'analyzer_server_info' to see limits and the current directory contents

2. ANALYZE TEXT:
   - Use 'document_analyze' for text you already have
   - Use 'document_correct' to get a cleaned draft

3. ANALYZE FILES:
   - Use 'document_validate_file' if a file may be unreadable
   - Use 'document_analyze_file' for a single document
   - Use 'document_analyze_directory' to triage a whole folder

IMPORTANT NOTES:
- Supported formats: .txt, .md (UTF-8) and text-based .pdf
- Files up to %dMB are accepted
- Text longer than %d characters is rejected by the text tools and truncated for files
- Scanned PDFs without a text layer cannot be analyzed
- Analysis is rule-based: identical text always yields identical results`,
		s.maxFileSize/(1024*1024), s.maxContentLength)
}
