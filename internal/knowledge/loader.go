package knowledge

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html"
)

// Load builds a Base from the compiled-in entries plus any supported files
// found in docsDir. An empty docsDir yields the builtin entries only. Files
// that fail to parse are skipped with a warning so a single bad document
// cannot prevent startup.
func Load(docsDir string) (*Base, error) {
	docs := builtinEntries()

	if docsDir != "" {
		loaded, err := loadDir(docsDir)
		if err != nil {
			return nil, err
		}
		docs = append(docs, loaded...)
	}

	return New(docs), nil
}

func loadDir(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading docs directory: %w", err)
	}

	// Sort by name so document order (and therefore ranker tie-breaking)
	// is deterministic across restarts.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		content, err := extractText(path)
		if err != nil {
			slog.Warn("skipping knowledge document", "path", path, "error", err)
			continue
		}
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		docs = append(docs, Document{
			Title:   strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Source:  path,
			Content: content,
		})
	}
	return docs, nil
}

// extractText returns the plain text of a knowledge file based on its
// extension. Unsupported extensions are an error so they show up in the
// startup log rather than being silently ignored.
func extractText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case ".html", ".htm":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return htmlText(data)
	case ".pdf":
		return pdfText(path)
	default:
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("reading pdf text: %w", err)
	}
	return buf.String(), nil
}

// htmlText strips markup and returns the visible text of an HTML document,
// with whitespace collapsed.
func htmlText(data []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(sb.String()), " "), nil
}
