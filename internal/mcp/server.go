package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/a3tai/mcp-uzdoc-analyzer/internal/config"
	"github.com/a3tai/mcp-uzdoc-analyzer/internal/descriptions"
	"github.com/a3tai/mcp-uzdoc-analyzer/internal/document"
	"github.com/a3tai/mcp-uzdoc-analyzer/internal/intelligence"
)

// Tool names
const (
	ToolAnalyze          = "document_analyze"
	ToolCorrect          = "document_correct"
	ToolAnalyzeFile      = "document_analyze_file"
	ToolAnalyzeDirectory = "document_analyze_directory"
	ToolValidateFile     = "document_validate_file"
	ToolSearchDirectory  = "document_search_directory"
	ToolServerInfo       = "analyzer_server_info"
)

// Server represents the MCP server instance
type Server struct {
	config    *config.Config
	service   *document.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.Config, service *document.Service) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if service == nil {
		return nil, fmt.Errorf("document service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false), // the tool list is fixed at startup
	)

	s := &Server{
		config:    cfg,
		service:   service,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available MCP tools
func (s *Server) registerTools() {
	analyzeTool := mcp.NewTool(
		ToolAnalyze,
		mcp.WithDescription(descriptions.DocumentAnalyzeDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text in Uzbek (Latin script)"),
		),
	)
	s.mcpServer.AddTool(analyzeTool, s.handleAnalyze)

	correctTool := mcp.NewTool(
		ToolCorrect,
		mcp.WithDescription(descriptions.DocumentCorrectDescription),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Document text to correct"),
		),
	)
	s.mcpServer.AddTool(correctTool, s.handleCorrect)

	analyzeFileTool := mcp.NewTool(
		ToolAnalyzeFile,
		mcp.WithDescription(descriptions.DocumentAnalyzeFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to a .txt, .md or .pdf file (absolute or relative to the document directory)"),
		),
	)
	s.mcpServer.AddTool(analyzeFileTool, s.handleAnalyzeFile)

	analyzeDirectoryTool := mcp.NewTool(
		ToolAnalyzeDirectory,
		mcp.WithDescription(descriptions.DocumentAnalyzeDirectoryDescription),
		mcp.WithString("directory",
			mcp.Description("Directory to analyze (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional file-name filter"),
		),
	)
	s.mcpServer.AddTool(analyzeDirectoryTool, s.handleAnalyzeDirectory)

	validateFileTool := mcp.NewTool(
		ToolValidateFile,
		mcp.WithDescription(descriptions.DocumentValidateFileDescription),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the document file"),
		),
	)
	s.mcpServer.AddTool(validateFileTool, s.handleValidateFile)

	searchDirectoryTool := mcp.NewTool(
		ToolSearchDirectory,
		mcp.WithDescription(descriptions.DocumentSearchDirectoryDescription),
		mcp.WithString("directory",
			mcp.Description("Directory path to search (uses default if empty)"),
		),
		mcp.WithString("query",
			mcp.Description("Optional search query for fuzzy matching"),
		),
	)
	s.mcpServer.AddTool(searchDirectoryTool, s.handleSearchDirectory)

	serverInfoTool := mcp.NewTool(
		ToolServerInfo,
		mcp.WithDescription(descriptions.ServerInfoDescription),
	)
	s.mcpServer.AddTool(serverInfoTool, s.handleServerInfo)
}

// optionalString returns a string argument or "" when absent
func optionalString(request mcp.CallToolRequest, name string) string {
	if v, ok := request.GetArguments()[name].(string); ok {
		return v
	}
	return ""
}

// Handler functions
func (s *Server) handleAnalyze(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.AnalyzeText(document.AnalyzeTextRequest{Text: text})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText, err := formatAnalysis(result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleCorrect(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.CorrectText(document.CorrectTextRequest{Text: text})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatCorrection(result)), nil
}

func (s *Server) handleAnalyzeFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.AnalyzeFile(ctx, document.AnalyzeFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responseText := fmt.Sprintf("Document: %s\n", result.Path)
	responseText += fmt.Sprintf("Format: %s\n", result.Format)
	responseText += fmt.Sprintf("Pages: %d\n", result.Pages)
	responseText += fmt.Sprintf("Size: %d bytes\n", result.Size)
	if result.Truncated {
		responseText += "\n⚠️  WARNING: The document exceeds the content limit; only its beginning was analyzed.\n"
	}

	analysis, err := formatAnalysis(&result.Analysis)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	responseText += "\n" + analysis

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleAnalyzeDirectory(ctx context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	req := document.AnalyzeDirectoryRequest{
		Directory: optionalString(request, "directory"),
		Query:     optionalString(request, "query"),
	}

	result, err := s.service.AnalyzeDirectory(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if s.config.IsDebug() {
		log.Printf("Batch %s: %d analyzed, %d failed in %dms",
			result.ID, result.Analyzed, result.Failed, result.DurationMs)
	}

	if result.TotalFiles == 0 {
		responseText := fmt.Sprintf("No supported documents found in directory: %s", result.Directory)
		if result.Query != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.Query)
		}
		return mcp.NewToolResultText(responseText), nil
	}

	return mcp.NewToolResultText(formatBatch(result)), nil
}

func (s *Server) handleValidateFile(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.ValidateFile(document.ValidateFileRequest{Path: path})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.Valid {
		responseText = fmt.Sprintf("Document %s is valid and readable (%s, %d page(s))",
			result.Path, result.Format, result.Pages)
	} else {
		responseText = fmt.Sprintf("Document validation failed for %s: %s", result.Path, result.Message)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleSearchDirectory(_ context.Context, request mcp.CallToolRequest) (
	*mcp.CallToolResult, error,
) {
	req := document.SearchDirectoryRequest{
		Directory: optionalString(request, "directory"),
		Query:     optionalString(request, "query"),
	}

	result, err := s.service.SearchDirectory(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var responseText string
	if result.TotalCount == 0 {
		responseText = fmt.Sprintf("No supported documents found in directory: %s", result.Directory)
		if result.SearchQuery != "" {
			responseText += fmt.Sprintf(" (searched for: %s)", result.SearchQuery)
		}
	} else {
		responseText = formatSearch(result)
	}

	return mcp.NewToolResultText(responseText), nil
}

func (s *Server) handleServerInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.service.ServerInfo(ctx, s.config.ServerName, s.config.Version)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatServerInfo(result)), nil
}

// Formatting functions

// formatAnalysis renders an analysis as a readable report followed by its JSON form
func formatAnalysis(result *intelligence.AnalysisResult) (string, error) {
	text := "Document Analysis\n"
	text += fmt.Sprintf("Type: %s, confidence %d%%\n", docTypeLabel(result.DocType), result.DocTypeConfidence)
	text += fmt.Sprintf("Department: %s\n", result.DepartmentOrigin)
	if result.HasLetterNumber() {
		text += fmt.Sprintf("Letter number: %s\n", result.LetterNumber)
	}
	if result.HasLetterDate() {
		text += fmt.Sprintf("Letter date: %s\n", result.LetterDate)
	}
	text += fmt.Sprintf("Urgency: %s\n", result.Urgency)
	text += fmt.Sprintf("Sentiment: %s\n", result.Sentiment)
	if result.ConfidentialityRisk {
		text += "\n🔒 CONFIDENTIAL: The document mentions sensitive data. Restrict its distribution.\n\n"
	}
	text += fmt.Sprintf("Summary: %s\n", result.Summary)
	if len(result.KeyEntities) > 0 {
		text += fmt.Sprintf("Key words: %v\n", result.KeyEntities)
	}
	text += fmt.Sprintf("Topics: %v\n", result.Topics)
	text += fmt.Sprintf("Statistics: %d words, %d sentences, %d paragraphs\n",
		result.Statistics.Words, result.Statistics.Sentences, result.Statistics.Paragraphs)

	if len(result.GrammarErrors) == 0 {
		text += "\nNo writing issues found.\n"
	} else {
		text += fmt.Sprintf("\nWriting issues (%d):\n", len(result.GrammarErrors))
		for i, f := range result.GrammarErrors {
			text += fmt.Sprintf("%d. [%s] %s -> %s\n", i+1, f.Type, f.Original, f.Suggestion)
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis: %w", err)
	}
	text += "\nJSON:\n" + string(data)

	return text, nil
}

func formatCorrection(result *document.CorrectTextResult) string {
	if !result.Changed {
		return "No corrections needed.\n\n" + result.Corrected
	}
	return "Corrected text:\n\n" + result.Corrected
}

func formatBatch(result *document.BatchAnalysisResult) string {
	text := "Batch Analysis\n"
	text += fmt.Sprintf("Batch ID: %s\n", result.ID)
	text += fmt.Sprintf("Directory: %s\n", result.Directory)
	if result.Query != "" {
		text += fmt.Sprintf("Search query: %s\n", result.Query)
	}
	text += fmt.Sprintf("Documents: %d found, %d analyzed, %d failed\n",
		result.TotalFiles, result.Analyzed, result.Failed)
	text += fmt.Sprintf("Duration: %dms\n", result.DurationMs)

	if len(result.ByDocType) > 0 {
		text += "\nBy document type:\n"
		for _, name := range sortedKeys(result.ByDocType) {
			text += fmt.Sprintf("  • %s: %d\n", name, result.ByDocType[name])
		}
	}
	if len(result.ByUrgency) > 0 {
		text += "\nBy urgency:\n"
		for _, level := range []intelligence.Urgency{
			intelligence.UrgencyHigh, intelligence.UrgencyMedium, intelligence.UrgencyLow,
		} {
			if n := result.ByUrgency[string(level)]; n > 0 {
				text += fmt.Sprintf("  • %s: %d\n", level, n)
			}
		}
	}
	if result.ConfidentialFiles > 0 {
		text += fmt.Sprintf("\n🔒 Confidential documents: %d\n", result.ConfidentialFiles)
	}

	if urgent := result.UrgentResults(); len(urgent) > 0 {
		text += "\nUrgent documents:\n"
		for i, r := range urgent {
			text += fmt.Sprintf("%d. %s (%s)\n", i+1, r.Path, r.Analysis.DocType)
		}
	}

	text += "\nDocuments:\n"
	for i, r := range result.Results {
		text += fmt.Sprintf("%d. %s\n", i+1, r.Path)
		text += fmt.Sprintf("   Type: %s, Urgency: %s, Department: %s\n",
			r.Analysis.DocType, r.Analysis.Urgency, r.Analysis.DepartmentOrigin)
		if r.Analysis.HasLetterNumber() {
			text += fmt.Sprintf("   Letter number: %s\n", r.Analysis.LetterNumber)
		}
		text += fmt.Sprintf("   Issues: %d\n", len(r.Analysis.GrammarErrors))
	}

	if len(result.Errors) > 0 {
		text += "\nFailed documents:\n"
		for _, e := range result.Errors {
			text += fmt.Sprintf("  • %s: %s\n", e.Path, e.Error)
		}
	}

	return text
}

func formatSearch(result *document.SearchDirectoryResult) string {
	text := fmt.Sprintf("Found %d document(s) in directory: %s\n", result.TotalCount, result.Directory)
	if result.SearchQuery != "" {
		text += fmt.Sprintf("Search query: %s\n", result.SearchQuery)
	}
	text += "\nFiles:\n"

	for i, file := range result.Files {
		text += fmt.Sprintf("%d. %s\n", i+1, file.Name)
		text += fmt.Sprintf("   Path: %s\n", file.Path)
		text += fmt.Sprintf("   Format: %s\n", file.Format)
		text += fmt.Sprintf("   Size: %d bytes\n", file.Size)
		text += fmt.Sprintf("   Modified: %s\n", file.ModifiedTime)
		if i < len(result.Files)-1 {
			text += "\n"
		}
	}

	return text
}

func formatServerInfo(result *document.ServerInfoResult) string {
	text := fmt.Sprintf("📋 %s v%s - Server Information\n", result.ServerName, result.Version)
	text += fmt.Sprintf("📁 Default Directory: %s\n", result.DefaultDirectory)
	text += fmt.Sprintf("📏 Max File Size: %d MB\n", result.MaxFileSize/(1024*1024))
	text += fmt.Sprintf("📝 Max Content Length: %d characters\n", result.MaxContentLength)
	text += fmt.Sprintf("⚙️  Batch Workers: %d\n\n", result.Workers)

	if len(result.DirectoryContents) > 0 {
		text += fmt.Sprintf("📂 Directory Contents (%d documents found):\n", len(result.DirectoryContents))
		for i, file := range result.DirectoryContents {
			if i >= 10 {
				text += fmt.Sprintf("   ... and %d more files\n", len(result.DirectoryContents)-10)
				break
			}
			text += fmt.Sprintf("   %d. %s (%d bytes)\n", i+1, file.Name, file.Size)
		}
		text += "\n"
	} else {
		text += "📂 Directory Contents: No supported documents found in default directory\n\n"
	}

	text += "🛠️  Available Tools:\n"
	for _, tool := range result.AvailableTools {
		text += fmt.Sprintf("\n• %s\n", tool.Name)
		text += fmt.Sprintf("  Usage: %s\n", tool.Usage)
		text += fmt.Sprintf("  Parameters: %s\n", tool.Parameters)
	}

	if len(result.SupportedFormats) > 0 {
		text += "\n📄 Supported Formats:\n"
		for _, format := range result.SupportedFormats {
			text += fmt.Sprintf("  • %s\n", format)
		}
	}

	if len(result.DocumentTypes) > 0 {
		text += "\n🗂️  Document Types:\n"
		for _, docType := range result.DocumentTypes {
			text += fmt.Sprintf("  • %s\n", docTypeLabel(docType))
		}
	}

	text += "\n" + result.UsageGuidance

	return text
}

// docTypeLabel appends the English name to built-in document types
func docTypeLabel(docType string) string {
	if name := intelligence.DocTypeDisplayName(docType); name != docType {
		return fmt.Sprintf("%s (%s)", docType, name)
	}
	return docType
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Run starts the MCP server in the configured mode
func (s *Server) Run(ctx context.Context) error {
	if s.config.IsServerMode() {
		return s.runServerMode(ctx)
	}
	return s.runStdioMode(ctx)
}

// runStdioMode runs the server in stdio mode
func (s *Server) runStdioMode(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting document analyzer MCP server in stdio mode")
		log.Printf("Document directory: %s", s.config.DocumentDirectory)
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}

// runServerMode runs the server in HTTP server mode
func (s *Server) runServerMode(ctx context.Context) error {
	// mcp-go only provides the stdio transport here
	log.Printf("Server mode not yet implemented with mark3labs/mcp-go")
	log.Printf("Falling back to stdio mode")
	return s.runStdioMode(ctx)
}
