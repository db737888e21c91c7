package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jgrande/kbchat/internal/pipeline"
	"github.com/jgrande/kbchat/internal/retrieval"
	"github.com/jgrande/kbchat/internal/storage"
)

// MCPRetriever abstracts semantic search for the MCP layer.
type MCPRetriever interface {
	Retrieve(ctx context.Context, query string) ([]retrieval.RankedMatch, error)
}

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Answerer  QueryAnswerer
	Retriever MCPRetriever
	Store     *storage.Store // optional; if nil, the recent-interactions resource is omitted
}

// NewMCPServer creates an MCP server with the kbchat tools and resources registered.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"kbchat",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions("kbchat — question answering grounded in a fixed knowledge base. Answers come only from stored documents; unrelated questions are declined."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("ask",
			mcp.WithDescription("Ask a question against the knowledge base. Returns a grounded answer, or a refusal when the knowledge base has nothing relevant."),
			mcp.WithString("query", mcp.Description("The question to answer"), mcp.Required()),
			mcp.WithString("language", mcp.Description("Response language code (e.g. en, es, fr); defaults to en")),
		),
		mcpAsk(deps),
	)

	s.AddTool(
		mcp.NewTool("search_knowledge",
			mcp.WithDescription("Rank knowledge base documents against a query by semantic similarity, without generating an answer."),
			mcp.WithString("query", mcp.Description("Search query"), mcp.Required()),
			mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 5)")),
		),
		mcpSearchKnowledge(deps),
	)

	if deps.Store != nil {
		s.AddResource(
			mcp.NewResource(
				"kbchat://recent",
				"Recent Interactions",
				mcp.WithResourceDescription("Last 10 recorded interactions (queries only)"),
				mcp.WithMIMEType("application/json"),
			),
			mcpResourceRecent(deps),
		)
	}

	return s
}

func mcpAsk(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		language := req.GetString("language", "")

		result, err := deps.Answerer.Answer(ctx, pipeline.Query{Text: query, Language: language})
		if err != nil {
			return mcpError(fmt.Sprintf("ask failed: %v", err)), nil
		}

		return mcpText(result.Text), nil
	}
}

func mcpSearchKnowledge(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := req.RequireString("query")
		if err != nil {
			return mcpError("query is required"), nil
		}

		limit := req.GetInt("limit", 5)
		if limit <= 0 {
			limit = 5
		}
		if limit > 50 {
			limit = 50
		}

		matches, err := deps.Retriever.Retrieve(ctx, query)
		if err != nil {
			return mcpError(fmt.Sprintf("search failed: %v", err)), nil
		}
		if len(matches) > limit {
			matches = matches[:limit]
		}

		if len(matches) == 0 {
			return mcpText("[]"), nil
		}

		type matchResult struct {
			ID         string  `json:"id"`
			Title      string  `json:"title"`
			Source     string  `json:"source"`
			Text       string  `json:"text"`
			Similarity float64 `json:"similarity"`
		}

		results := make([]matchResult, len(matches))
		for i, m := range matches {
			results[i] = matchResult{
				ID:         m.Document.ID,
				Title:      m.Document.Title,
				Source:     m.Document.Source,
				Text:       m.Document.Content,
				Similarity: m.Similarity,
			}
		}

		b, err := json.Marshal(results)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}

		return mcpText(string(b)), nil
	}
}

func mcpResourceRecent(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		interactions, err := deps.Store.ListInteractions(10, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to list interactions: %w", err)
		}

		type interactionSummary struct {
			ID        string `json:"id"`
			CreatedAt string `json:"created_at"`
			Query     string `json:"query"`
			Refused   bool   `json:"refused"`
		}

		summaries := make([]interactionSummary, len(interactions))
		for i, ix := range interactions {
			query := ix.Query
			if utf8.RuneCountInString(query) > 200 {
				runes := []rune(query)
				query = string(runes[:200]) + "..."
			}
			summaries[i] = interactionSummary{
				ID:        ix.ID,
				CreatedAt: ix.CreatedAt.UTC().Format(time.RFC3339),
				Query:     query,
				Refused:   ix.Refused,
			}
		}

		b, err := json.Marshal(summaries)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal interactions: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
