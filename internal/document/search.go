package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const modifiedTimeLayout = "2006-01-02 15:04:05"

// Search handles document discovery in directory trees
type Search struct {
	maxFileSize int64
	validator   *Validator
}

// NewSearch creates a new document search handler with the specified constraints
func NewSearch(maxFileSize int64) *Search {
	return &Search{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// SearchDirectory lists supported documents under a directory, optionally
// filtered by a fuzzy file-name query
func (s *Search) SearchDirectory(req SearchDirectoryRequest) (*SearchDirectoryResult, error) {
	absDirectory, err := s.resolveDirectory(req.Directory)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(req.Query))
	files, err := s.walk(absDirectory, query, 0)
	if err != nil {
		return nil, err
	}

	return &SearchDirectoryResult{
		Files:       files,
		TotalCount:  len(files),
		Directory:   absDirectory,
		SearchQuery: req.Query,
	}, nil
}

// FindDocumentsLimited returns at most limit supported documents; a limit of
// zero means no limit
func (s *Search) FindDocumentsLimited(directory string, limit int) ([]FileInfo, error) {
	absDirectory, err := s.resolveDirectory(directory)
	if err != nil {
		return nil, err
	}
	return s.walk(absDirectory, "", limit)
}

func (s *Search) resolveDirectory(directory string) (string, error) {
	if directory == "" {
		return "", fmt.Errorf("directory cannot be empty")
	}

	info, err := os.Stat(directory)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("directory does not exist: %s", directory)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", directory)
	}

	absDirectory, err := filepath.Abs(directory)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory path: %w", err)
	}
	return absDirectory, nil
}

// walk collects supported documents in lexical order. Hidden directories,
// symlinks and other non-regular entries are skipped.
func (s *Search) walk(root, query string, limit int) ([]FileInfo, error) {
	files := []FileInfo{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Continue walking even if one entry cannot be read
			return nil //nolint:nilerr // intentionally continue on entry errors
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if limit > 0 && len(files) >= limit {
			return filepath.SkipAll
		}

		format := DetectFormat(d.Name())
		if format == "" {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil //nolint:nilerr // file vanished during the walk
		}

		if err := s.validator.ValidateFileInfo(path, info); err != nil {
			return nil //nolint:nilerr // skip invalid files but keep walking
		}

		if query != "" && !matchesQuery(d.Name(), query) {
			return nil
		}

		files = append(files, FileInfo{
			Path:         path,
			Name:         d.Name(),
			Format:       format,
			Size:         info.Size(),
			ModifiedTime: info.ModTime().Format(modifiedTimeLayout),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking directory: %w", err)
	}

	return files, nil
}

// matchesQuery performs fuzzy matching of a lowercased query on a file name
func matchesQuery(filename, query string) bool {
	if query == "" {
		return true
	}

	name := strings.ToLower(filename)
	if strings.Contains(name, query) {
		return true
	}

	// Every query word must appear in some file-name word
	nameWords := splitIntoWords(strings.TrimSuffix(name, filepath.Ext(name)))
	for _, queryWord := range splitIntoWords(query) {
		found := false
		for _, word := range nameWords {
			if strings.Contains(word, queryWord) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// splitIntoWords splits a file name on common separators
func splitIntoWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case ' ', '_', '-', '.', '(', ')', '[', ']':
			return true
		}
		return false
	})
}
