// Package composer assembles the context block and the Gemini prompt pair
// (system instruction + user prompt) for a gated query.
package composer

import (
	"fmt"
	"strings"

	"github.com/jgrande/kbchat/internal/retrieval"
)

// AssembleContext joins the content of each match in rank order, separated
// by a blank line. Matched documents are included whole: no deduplication,
// truncation, or token budgeting.
func AssembleContext(matches []retrieval.RankedMatch) string {
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = m.Document.Content
	}
	return strings.Join(parts, "\n\n")
}

// SystemInstruction builds the system message constraining generation to the
// provided context. It carries the literal localized refusal string so the
// model can emit it verbatim, and pins the output language regardless of the
// query's or context's language.
func SystemInstruction(language, noInfoResponse string) string {
	return fmt.Sprintf(`You are a helpful assistant that ONLY answers questions based on the provided context.
If the information cannot be found in the context, respond with "%s"
Do not use any prior knowledge or make assumptions beyond what is explicitly stated in the context.
IMPORTANT: Always respond in %s language regardless of the language of the query or context.`,
		noInfoResponse, language)
}

// Prompt builds the user message: the assembled context, the question, and a
// closing instruction restating the output language.
func Prompt(contextBlock, question, language string) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	sb.WriteString(contextBlock)
	sb.WriteString("\n\nQuestion: ")
	sb.WriteString(question)
	sb.WriteString(fmt.Sprintf("\n\nAnswer based ONLY on the above context in %s language:", language))
	return sb.String()
}
