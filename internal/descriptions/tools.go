package descriptions

// Tool descriptions with practical examples and use cases

const (
	// Text Tools
	DocumentAnalyzeDescription = `Analyze Uzbek administrative correspondence and return a structured judgment.

**When to use:** You have the text of an official letter, order, petition or report and need to route, prioritize or review it.

**What you get:** Document type (Buyruq, Qaror, Ariza, Xat, Hisobot, Shartnoma, Bayonnoma, Ko'rsatma, Taqdimnoma, Tavsiyanoma) with a confidence score, originating department, letter number and date, a short summary, sentiment, urgency (Low/Medium/High), spelling, grammar and style findings, a confidentiality flag, key words and topics.

**Examples:**
• Route incoming mail: "Classify this letter and tell me which department it came from"
• Prioritize: "Is this order urgent? What is its deadline wording?"
• Review a draft: "List the spelling and punctuation problems in this memo"

**Best practices:** Pass the full document text. Analysis is rule-based and deterministic; the same text always produces the same result.`

	DocumentCorrectDescription = `Produce a corrected draft of Uzbek document text.

**When to use:** A draft needs its known misspellings fixed (malumot → ma'lumot, xujjat → hujjat), punctuation spacing normalized and sentence starts capitalized.

**Examples:**
• Clean a draft: "Correct this letter before I send it"
• Compare: run document_analyze first to see findings, then document_correct for the cleaned text

**Best practices:** Only dictionary misspellings and mechanical punctuation issues are changed. Review the draft; wording and style findings are not rewritten.`

	// File Tools
	DocumentAnalyzeFileDescription = `Read a document file and analyze its text.

**When to use:** The correspondence is stored as a .txt, .md or text-based .pdf file in the document directory.

**Examples:**
• "Analyze kirish/2024-03-15-xat.pdf"
• "What type of document is buyruqlar/45-12.txt and how urgent is it?"

**Best practices:** Paths may be absolute or relative to the document directory. Scanned PDFs without a text layer cannot be analyzed.`

	DocumentAnalyzeDirectoryDescription = `Analyze every supported document in a directory concurrently.

**When to use:** Triage a whole inbox folder: count document types, find urgent items and flag confidential files in one call.

**Examples:**
• "Analyze the kirish/ folder and list urgent letters"
• "How many orders and petitions are in the archive?"

**Best practices:** Use the optional query to restrict the batch by file name. Files that cannot be read are reported individually and do not stop the batch.`

	DocumentValidateFileDescription = `Check that a file is a readable, supported document before analysis.

**When to use:** Before analyzing files from an unknown source, or to find out why a file cannot be analyzed.

**What is checked:** existence, supported extension (.txt, .md, .pdf), size limits, UTF-8 text encoding, and PDF structure with page count.`

	DocumentSearchDirectoryDescription = `Find supported documents in a directory with optional fuzzy file-name search.

**When to use:** Discover what correspondence is available before analyzing it.

**Examples:**
• "List all documents in the document directory"
• "Find files whose names mention buyruq"

**Best practices:** Leave the directory empty to search the configured document directory.`

	ServerInfoDescription = `Get server information, available tools, supported formats, limits and the current document directory contents.

**When to use:** At the start of a session to discover capabilities and available documents.`
)

// ToolDescriptions maps tool names to their descriptions
var ToolDescriptions = map[string]string{
	"document_analyze":           DocumentAnalyzeDescription,
	"document_correct":           DocumentCorrectDescription,
	"document_analyze_file":      DocumentAnalyzeFileDescription,
	"document_analyze_directory": DocumentAnalyzeDirectoryDescription,
	"document_validate_file":     DocumentValidateFileDescription,
	"document_search_directory":  DocumentSearchDirectoryDescription,
	"analyzer_server_info":       ServerInfoDescription,
}

// GetToolDescription returns the description for a tool
func GetToolDescription(toolName string) string {
	if desc, exists := ToolDescriptions[toolName]; exists {
		return desc
	}
	return "Tool description not available"
}

// GetAllToolNames returns a list of all available tool names
func GetAllToolNames() []string {
	var names []string
	for name := range ToolDescriptions {
		names = append(names, name)
	}
	return names
}
