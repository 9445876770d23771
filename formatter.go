package doccover

import "strings"

// FormatDocuments renders docs as one text, each document under a
// "## Document: <name>" line, separated by blank lines. The content is shown
// exactly as it is indexed.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, "## Document: "+doc.Name+"\n"+strings.TrimRight(doc.Content, "\n"))
	}
	return strings.Join(parts, "\n\n")
}
