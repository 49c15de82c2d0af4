package document

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxTextSize caps extracted text, in bytes
const DefaultMaxTextSize = 10 * 1024 * 1024

// pageSeparator joins the text of consecutive PDF pages
const pageSeparator = "\n\n"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// formatByExtension maps supported file extensions to document formats
var formatByExtension = map[string]string{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatMarkdown,
	".markdown": FormatMarkdown,
	".pdf":      FormatPDF,
}

// DetectFormat returns the document format for a file name, or an empty
// string when the extension is not supported
func DetectFormat(name string) string {
	return formatByExtension[strings.ToLower(filepath.Ext(name))]
}

// SupportedExtensions returns the file extensions the reader accepts
func SupportedExtensions() []string {
	return []string{".txt", ".text", ".md", ".markdown", ".pdf"}
}

// Reader extracts text from plain-text, Markdown and PDF files
type Reader struct {
	maxFileSize int64
	maxTextSize int
}

// NewReader creates a new document reader with the specified constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		maxTextSize: DefaultMaxTextSize,
	}
}

// ReadFile extracts the text content of a document file
func (r *Reader) ReadFile(req ReadFileRequest) (*ReadFileResult, error) {
	if req.Path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(req.Path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", req.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	format, err := r.checkFile(req.Path, fileInfo)
	if err != nil {
		return nil, err
	}

	result := &ReadFileResult{
		Path:   req.Path,
		Format: format,
		Size:   fileInfo.Size(),
	}

	if format == FormatPDF {
		err = r.readPDF(req.Path, result)
	} else {
		err = r.readText(req.Path, result)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// checkFile rejects directories, unsupported extensions and oversized files
func (r *Reader) checkFile(filePath string, fileInfo os.FileInfo) (string, error) {
	if fileInfo.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	format := DetectFormat(filePath)
	if format == "" {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFile, filePath)
	}

	if fileInfo.Size() > r.maxFileSize {
		return "", fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), r.maxFileSize)
	}

	return format, nil
}

// readText loads a UTF-8 text or Markdown file
func (r *Reader) readText(filePath string, result *ReadFileResult) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: %s is not valid UTF-8 text", ErrUnsupportedFile, filePath)
	}

	result.Content, result.Truncated = r.capText(string(data))
	result.Pages = 1
	return nil
}

// readPDF extracts the plain text of every page. The PDF library panics on
// some malformed inputs; those surface as ErrUnsupportedFile.
func (r *Reader) readPDF(filePath string, result *ReadFileResult) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: PDF extraction panicked: %v", ErrUnsupportedFile, rec)
		}
	}()

	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	numPages := pdfReader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages
			continue
		}

		if builder.Len() > 0 && content != "" {
			builder.WriteString(pageSeparator)
		}
		builder.WriteString(content)

		if builder.Len() > r.maxTextSize {
			break
		}
	}

	text := builder.String()
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: no text content could be extracted from PDF", ErrEmptyText)
	}

	result.Content, result.Truncated = r.capText(text)
	result.Pages = numPages
	return nil
}

// capText cuts text to maxTextSize bytes on a rune boundary
func (r *Reader) capText(text string) (string, bool) {
	if len(text) <= r.maxTextSize {
		return text, false
	}

	cut := r.maxTextSize
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut], true
}
