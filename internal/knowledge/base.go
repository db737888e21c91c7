// Package knowledge holds the fixed knowledge base the chatbot answers from.
// Entries are compiled into the binary; additional documents can be loaded
// from a docs directory at startup. The base is immutable once built — there
// is no runtime ingestion.
package knowledge

import "github.com/google/uuid"

// Document is a single knowledge base entry.
type Document struct {
	ID      string
	Title   string
	Source  string
	Content string
}

// Base is an ordered, read-only collection of documents.
type Base struct {
	docs []Document
}

// New creates a Base from the given documents, assigning IDs to any entry
// that lacks one.
func New(docs []Document) *Base {
	out := make([]Document, len(docs))
	copy(out, docs)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.New().String()
		}
	}
	return &Base{docs: out}
}

// Default returns a Base holding only the compiled-in entries.
func Default() *Base {
	return New(builtinEntries())
}

// Documents returns the documents in insertion order. The returned slice
// must not be mutated.
func (b *Base) Documents() []Document {
	return b.docs
}

// Contents returns the content strings in document order, the shape the
// embedding batch path consumes.
func (b *Base) Contents() []string {
	texts := make([]string, len(b.docs))
	for i, d := range b.docs {
		texts[i] = d.Content
	}
	return texts
}

// Len returns the number of documents.
func (b *Base) Len() int {
	return len(b.docs)
}

// builtinEntries is the pre-loaded demo knowledge base. Replace these with
// your own documents.
func builtinEntries() []Document {
	return []Document{
		{
			Title:  "Profile and education",
			Source: "builtin",
			Content: "Jorge Grande Nadal is a developer specialized in backend work and " +
				"cybersecurity, trained in cross-platform application development at the " +
				"Universidad Europea de Madrid (2019-2021), working with Spring, Java, Swift, " +
				"Python and Android. His training covered agile methodologies such as Scrum, " +
				"cloud computing, IoT application development and advanced cybersecurity " +
				"content. He has been passionate about computing since age 14.",
		},
		{
			Title:  "Work experience",
			Source: "builtin",
			Content: "Jorge worked at BOTECH Fraud Prevention & Intelligence S.L. between " +
				"2022 and 2023, starting in card fraud prevention and later joining the R&D " +
				"team under the CTO. There he administered and developed servers for " +
				"real-time discovery and notification of critical security vulnerabilities, " +
				"maintained an Android application for malware detection and alerting, and " +
				"designed an automatic vulnerability search system over aggregated sources, " +
				"using Python, Android, Linux and SQL. In 2024 he joined LIVEMED Iberia as a " +
				"backend developer, continuing with Python, Android and Linux.",
		},
		{
			Title:  "Languages and interests",
			Source: "builtin",
			Content: "Jorge speaks Spanish (native), English (advanced) and has basic " +
				"notions of Chinese. He is a member of the NGO CISV Spain, with which he took " +
				"part in international educational programmes in Copenhagen (2015) and " +
				"Bucharest (2019). His personal interests include travelling (more than ten " +
				"countries visited), reading authors such as Glukhovsky, Sanderson and " +
				"Lovecraft, playing Spanish guitar, and films by Tarantino, Nolan and Kubrick.",
		},
		{
			Title:  "Availability and contact",
			Source: "builtin",
			Content: "Jorge's phone number is 673610075 and his email is " +
				"jorgegrandenadal@gmail.com. He is 24 years old, owns a vehicle, and prefers " +
				"on-site work although he does not rule out remote or hybrid arrangements. " +
				"His salary expectation is around 24000 euros gross per year. He would like " +
				"to focus his career on artificial intelligence and on Android and iOS " +
				"application development. His LinkedIn URL is " +
				"www.linkedin.com/in/jorge-grande-nadal-b649a4200.",
		},
	}
}
