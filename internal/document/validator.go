package document

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// sniffSize is how much of a text file is checked for valid UTF-8
const sniffSize = 4096

// Validator handles document file validation operations
type Validator struct {
	maxFileSize int64
}

// NewValidator creates a new document validator with the specified constraints
func NewValidator(maxFileSize int64) *Validator {
	return &Validator{
		maxFileSize: maxFileSize,
	}
}

// ValidateFile checks that a file is a readable, supported document.
// Validation failures are reported in the result, not as an error.
func (v *Validator) ValidateFile(req ValidateFileRequest) (*ValidateFileResult, error) {
	result := &ValidateFileResult{
		Path:  req.Path,
		Valid: false,
	}

	format, pages, err := v.validateDocument(req.Path)
	result.Format = format
	if err != nil {
		result.Message = err.Error()
		return result, nil //nolint:nilerr // validation failure is a result, not a processing error
	}

	result.Valid = true
	result.Pages = pages
	return result, nil
}

// validateDocument returns the format and page count of a valid document
func (v *Validator) validateDocument(filePath string) (string, int, error) {
	if filePath == "" {
		return "", 0, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return "", 0, fmt.Errorf("file does not exist: %s", filePath)
	}
	if err != nil {
		return "", 0, fmt.Errorf("cannot access file: %w", err)
	}

	if err := v.ValidateFileInfo(filePath, fileInfo); err != nil {
		return DetectFormat(filePath), 0, err
	}

	format := DetectFormat(filePath)
	if format == FormatPDF {
		pages, err := v.pdfPageCount(filePath)
		if err != nil {
			return format, 0, err
		}
		return format, pages, nil
	}

	if err := v.checkUTF8(filePath); err != nil {
		return format, 0, err
	}
	return format, 1, nil
}

// ValidateFileInfo performs basic validation on file info without opening the file
func (v *Validator) ValidateFileInfo(filePath string, fileInfo os.FileInfo) error {
	if fileInfo.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	if DetectFormat(filePath) == "" {
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, filePath)
	}

	if fileInfo.Size() == 0 {
		return fmt.Errorf("file is empty: %s", filePath)
	}

	if fileInfo.Size() > v.maxFileSize {
		return fmt.Errorf("file too large: %d bytes (max: %d bytes)",
			fileInfo.Size(), v.maxFileSize)
	}

	return nil
}

// pdfPageCount parses the PDF structure and returns its page count
func (v *Validator) pdfPageCount(filePath string) (int, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer file.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(file, conf)
	if err != nil {
		return 0, fmt.Errorf("invalid PDF file: %w", err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return 0, fmt.Errorf("invalid PDF page tree: %w", err)
	}

	return ctx.PageCount, nil
}

// checkUTF8 verifies the head of a text file decodes as UTF-8
func (v *Validator) checkUTF8(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	buf := make([]byte, sniffSize)
	n, err := file.Read(buf)
	if err != nil && n == 0 {
		return fmt.Errorf("cannot read file: %w", err)
	}
	head := bytes.TrimPrefix(buf[:n], utf8BOM)

	// A multi-byte rune may straddle the sniff boundary
	for i := 0; i < utf8.UTFMax && len(head) > 0 && !utf8.Valid(head); i++ {
		if n < sniffSize {
			break
		}
		head = head[:len(head)-1]
	}

	if !utf8.Valid(head) {
		return fmt.Errorf("%w: %s is not valid UTF-8 text", ErrUnsupportedFile, filePath)
	}
	return nil
}
