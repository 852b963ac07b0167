package langdetect

import "regexp"

// documentPatterns recognize organizational document identifiers, e.g. AEM01-WI-DSU06-SD01, AURG340-SF06, AEM01
var documentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,6}\d{1,4}(-[A-Z]{1,3}\d{1,4}){1,3}\b`),
	regexp.MustCompile(`\b[A-Z]{2,6}\d{2,4}-[A-Z]{1,3}\d{1,3}\b`),
	regexp.MustCompile(`\b[A-Z]{2,6}\d{1,4}\b`),
}

// documentStripPatterns are looser than documentPatterns to remove partial and irregular codes as well.
// Order matters: earlier removals prevent later patterns from over-deleting.
var documentStripPatterns = []*regexp.Regexp{
	// AEM01-WI-DSU06-SD01, AEM01-WI123-DSU06-SD01
	regexp.MustCompile(`\b[A-Z]{2,6}\d{0,4}(-[A-Z]{2,6}\d{0,4}){1,4}\b`),
	// AURG340-SF06
	regexp.MustCompile(`\b[A-Z]{2,6}\d{2,4}-[A-Z]{1,3}\d{1,3}\b`),
	// ARG03, WI035
	regexp.MustCompile(`\b[A-Z]{2,6}\d{1,4}\b`),
	// WI-SER035
	regexp.MustCompile(`\b[A-Z]{2,4}-[A-Z]{2,4}\d{2,4}\b`),
}

// MatchesDocumentPattern checks if the text contains a document identifier
func MatchesDocumentPattern(text string) bool {
	if text == "" {
		return false
	}

	return anyMatch(documentPatterns, text)
}

// removeDocumentPatterns removes all document identifiers from the text
func removeDocumentPatterns(text string) string {
	for _, pattern := range documentStripPatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	return collapseSpaces(text)
}
