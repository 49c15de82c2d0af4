package document

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSearchTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "buyruq_45-12.txt", []byte("Buyruq"))
	writeFile(t, dir, "ariza-tatil.md", []byte("Ariza"))
	writeFile(t, dir, "hisobot 2024.pdf", buildPDF("Hisobot"))
	writeFile(t, dir, "kirish/xat.txt", []byte("Xat"))
	writeFile(t, dir, "kirish/rasm.png", []byte("png"))
	writeFile(t, dir, "bosh.txt", nil)
	writeFile(t, dir, ".arxiv/eski.txt", []byte("Eski"))
	return dir
}

func TestSearch_SearchDirectory(t *testing.T) {
	dir := setupSearchTree(t)
	search := NewSearch(testMaxFileSize)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{
			name:     "all supported files",
			expected: []string{"ariza-tatil.md", "buyruq_45-12.txt", "hisobot 2024.pdf", "xat.txt"},
		},
		{name: "substring", query: "buyruq", expected: []string{"buyruq_45-12.txt"}},
		{name: "case insensitive", query: "HISOBOT", expected: []string{"hisobot 2024.pdf"}},
		{name: "word match", query: "tatil ariza", expected: []string{"ariza-tatil.md"}},
		{name: "no match", query: "shartnoma", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := search.SearchDirectory(SearchDirectoryRequest{Directory: dir, Query: tt.query})
			require.NoError(t, err)

			names := make([]string, 0, len(result.Files))
			for _, f := range result.Files {
				names = append(names, f.Name)
				assert.NotEmpty(t, f.Format)
				assert.True(t, filepath.IsAbs(f.Path))
			}
			assert.Equal(t, tt.expected, names)
			assert.Equal(t, len(tt.expected), result.TotalCount)
			assert.Equal(t, tt.query, result.SearchQuery)
		})
	}
}

func TestSearch_Errors(t *testing.T) {
	dir := setupSearchTree(t)
	search := NewSearch(testMaxFileSize)

	_, err := search.SearchDirectory(SearchDirectoryRequest{})
	assert.ErrorContains(t, err, "directory cannot be empty")

	_, err = search.SearchDirectory(SearchDirectoryRequest{Directory: filepath.Join(dir, "yoq")})
	assert.ErrorContains(t, err, "directory does not exist")

	_, err = search.SearchDirectory(SearchDirectoryRequest{Directory: filepath.Join(dir, "buyruq_45-12.txt")})
	assert.ErrorContains(t, err, "not a directory")
}

func TestSearch_FindDocumentsLimited(t *testing.T) {
	dir := setupSearchTree(t)
	search := NewSearch(testMaxFileSize)

	files, err := search.FindDocumentsLimited(dir, 2)
	require.NoError(t, err)
	assert.Len(t, files, 2)

	files, err = search.FindDocumentsLimited(dir, 0)
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestMatchesQuery(t *testing.T) {
	tests := []struct {
		filename string
		query    string
		expected bool
	}{
		{"buyruq_45-12.txt", "", true},
		{"buyruq_45-12.txt", "45-12", true},
		{"buyruq_45-12.txt", "buyruq 45", true},
		{"buyruq_45-12.txt", "buyruq 46", false},
		{"Xat (javob).md", "javob", true},
		{"hisobot.pdf", "pdf", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, matchesQuery(tt.filename, tt.query), "%s / %s", tt.filename, tt.query)
	}
}
