package chat

import "strings"

// SummaryDetector decides whether a rewritten query is asking for an overview
// of the knowledge base rather than a specific answer.
type SummaryDetector struct {
	keywords []string
}

// NewSummaryDetector builds a detector over the given trigger keywords. Nil
// keeps the detector inert.
func NewSummaryDetector(keywords []string) *SummaryDetector {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return &SummaryDetector{keywords: lowered}
}

// IsSummaryRequest matches case-insensitively on substrings of the rewritten
// query. The rewritten query is matched rather than the raw message because
// the rewriter normalizes vague questions into topic searches.
func (d *SummaryDetector) IsSummaryRequest(query string) bool {
	lowered := strings.ToLower(query)
	for _, kw := range d.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
