// Package pipeline sequences the answer flow: embed the query, rank the
// knowledge base against it, gate on relevance, and either refuse in the
// caller's language or generate an answer constrained to the matched
// context.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jgrande/kbchat/internal/composer"
	"github.com/jgrande/kbchat/internal/locale"
	"github.com/jgrande/kbchat/internal/provider"
	"github.com/jgrande/kbchat/internal/retrieval"
)

// ErrEmptyQuery indicates the caller supplied no query text. It maps to a
// 400 at the HTTP layer and is never retried.
var ErrEmptyQuery = errors.New("query text must be a non-empty string")

// Query is one question with the language the answer should be written in.
type Query struct {
	Text     string
	Language string
}

// Result is the terminal outcome of one pipeline invocation. A refusal is a
// successful result, not an error: Refused is true and Text carries the
// localized no-information string.
type Result struct {
	Text          string
	Language      string
	Refused       bool
	TopSimilarity float64
	MatchIDs      []string
	DurationMs    int64
}

// Answerer runs the retrieval-and-answer pipeline. Each stage depends on the
// previous one; no stage is retried and every invocation returns exactly one
// terminal result.
type Answerer struct {
	retriever *retrieval.Retriever
	gate      retrieval.Gate
	provider  provider.Provider
	genModel  string
	logger    *slog.Logger
}

// NewAnswerer wires the pipeline components together.
func NewAnswerer(retriever *retrieval.Retriever, gate retrieval.Gate, p provider.Provider, genModel string) *Answerer {
	return &Answerer{
		retriever: retriever,
		gate:      gate,
		provider:  p,
		genModel:  genModel,
		logger:    slog.Default(),
	}
}

// Answer processes a single query. Provider failures propagate verbatim;
// validation failures return ErrEmptyQuery. A negative gate outcome returns
// the localized refusal without calling the generation model.
func (a *Answerer) Answer(ctx context.Context, q Query) (Result, error) {
	start := time.Now()

	if strings.TrimSpace(q.Text) == "" {
		return Result{}, ErrEmptyQuery
	}
	lang := locale.Normalize(q.Language)

	ranked, err := a.retriever.Retrieve(ctx, q.Text)
	if err != nil {
		return Result{}, err
	}

	res := Result{Language: lang}
	if len(ranked) > 0 {
		res.TopSimilarity = ranked[0].Similarity
	}

	if !a.gate.Relevant(ranked) {
		res.Text = locale.NoInfo(lang)
		res.Refused = true
		res.DurationMs = time.Since(start).Milliseconds()
		a.logger.Debug("query refused",
			"language", lang,
			"top_similarity", res.TopSimilarity,
			"duration_ms", res.DurationMs,
		)
		return res, nil
	}

	top := a.gate.Top(ranked)
	for _, m := range top {
		res.MatchIDs = append(res.MatchIDs, m.Document.ID)
	}

	system := composer.SystemInstruction(lang, locale.NoInfo(lang))
	prompt := composer.Prompt(composer.AssembleContext(top), q.Text, lang)

	text, err := a.provider.GenerateText(ctx, a.genModel, system, prompt)
	if err != nil {
		return Result{}, err
	}

	res.Text = text
	res.DurationMs = time.Since(start).Milliseconds()
	a.logger.Debug("query answered",
		"language", lang,
		"matches", len(top),
		"top_similarity", res.TopSimilarity,
		"duration_ms", res.DurationMs,
	)
	return res, nil
}
