package document

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/a3tai/mcp-uzdoc-analyzer/internal/intelligence"
)

// AnalyzeDirectory analyzes every supported document under a directory with
// a bounded worker pool. Results keep the directory walk order; files that
// fail are reported in Errors and do not abort the batch.
func (s *Service) AnalyzeDirectory(ctx context.Context, req AnalyzeDirectoryRequest) (*BatchAnalysisResult, error) {
	started := time.Now()

	found, err := s.SearchDirectory(SearchDirectoryRequest{
		Directory: req.Directory,
		Query:     req.Query,
	})
	if err != nil {
		return nil, err
	}

	results := make([]*DocumentAnalysisResult, len(found.Files))
	errs := make([]error, len(found.Files))

	p := pool.New().WithMaxGoroutines(s.workers)
	for i, file := range found.Files {
		p.Go(func() {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = s.analyzeFile(file.Path)
		})
	}
	p.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch analysis cancelled: %w", err)
	}

	batch := &BatchAnalysisResult{
		ID:         uuid.NewString(),
		Directory:  found.Directory,
		Query:      req.Query,
		TotalFiles: len(found.Files),
		Results:    []DocumentAnalysisResult{},
		ByDocType:  make(map[string]int),
		ByUrgency:  make(map[string]int),
	}

	for i, file := range found.Files {
		if errs[i] != nil {
			batch.Errors = append(batch.Errors, FileError{Path: file.Path, Error: errs[i].Error()})
			continue
		}
		batch.add(*results[i])
	}
	batch.Failed = len(batch.Errors)
	batch.DurationMs = time.Since(started).Milliseconds()

	return batch, nil
}

// add records one successful analysis and updates the aggregates
func (b *BatchAnalysisResult) add(result DocumentAnalysisResult) {
	b.Results = append(b.Results, result)
	b.Analyzed++
	b.ByDocType[result.Analysis.DocType]++
	b.ByUrgency[string(result.Analysis.Urgency)]++
	if result.Analysis.ConfidentialityRisk {
		b.ConfidentialFiles++
	}
}

// UrgentResults returns the batch results classified as high urgency
func (b *BatchAnalysisResult) UrgentResults() []DocumentAnalysisResult {
	var urgent []DocumentAnalysisResult
	for _, r := range b.Results {
		if r.Analysis.Urgency == intelligence.UrgencyHigh {
			urgent = append(urgent, r)
		}
	}
	return urgent
}
