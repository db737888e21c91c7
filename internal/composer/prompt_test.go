package composer

import (
	"strings"
	"testing"

	"github.com/jgrande/kbchat/internal/knowledge"
	"github.com/jgrande/kbchat/internal/retrieval"
)

func TestAssembleContext(t *testing.T) {
	matches := []retrieval.RankedMatch{
		{Document: knowledge.Document{Content: "first entry"}},
		{Document: knowledge.Document{Content: "second entry"}},
		{Document: knowledge.Document{Content: "third entry"}},
	}

	got := AssembleContext(matches)
	want := "first entry\n\nsecond entry\n\nthird entry"
	if got != want {
		t.Errorf("AssembleContext = %q, want %q", got, want)
	}
}

func TestAssembleContext_Empty(t *testing.T) {
	if got := AssembleContext(nil); got != "" {
		t.Errorf("AssembleContext(nil) = %q, want empty", got)
	}
}

func TestAssembleContext_SingleMatchNoSeparator(t *testing.T) {
	matches := []retrieval.RankedMatch{
		{Document: knowledge.Document{Content: "only entry"}},
	}
	if got := AssembleContext(matches); got != "only entry" {
		t.Errorf("AssembleContext = %q", got)
	}
}

func TestSystemInstruction(t *testing.T) {
	refusal := "No tengo información sobre eso en mi base de conocimientos."
	got := SystemInstruction("es", refusal)

	if !strings.Contains(got, `respond with "`+refusal+`"`) {
		t.Errorf("system instruction missing literal refusal string:\n%s", got)
	}
	if !strings.Contains(got, "Always respond in es language") {
		t.Errorf("system instruction missing language pin:\n%s", got)
	}
	if !strings.Contains(got, "ONLY answers questions based on the provided context") {
		t.Errorf("system instruction missing grounding constraint:\n%s", got)
	}
}

func TestPrompt(t *testing.T) {
	got := Prompt("ctx block", "What is this?", "fr")

	if !strings.HasPrefix(got, "Context:\nctx block") {
		t.Errorf("prompt does not open with context:\n%s", got)
	}
	if !strings.Contains(got, "\n\nQuestion: What is this?") {
		t.Errorf("prompt missing question:\n%s", got)
	}
	if !strings.HasSuffix(got, "Answer based ONLY on the above context in fr language:") {
		t.Errorf("prompt missing closing instruction:\n%s", got)
	}
}
