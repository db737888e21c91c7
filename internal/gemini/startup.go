package gemini

import (
	"context"
	"fmt"
	"io"
)

// EnsureReady checks that the Gemini API is reachable with the configured
// key and that the generation and embedding models exist. Progress is
// written to w. Missing models are reported but non-fatal: the API key may
// lack list permission while still allowing inference.
func EnsureReady(ctx context.Context, c *Client, genModel, embedModel string, w io.Writer) error {
	if !c.IsReachable(ctx) {
		return fmt.Errorf("Gemini API is not reachable. Check the network and GEMINI_API_KEY")
	}

	models, err := c.ListModels(ctx)
	if err != nil {
		fmt.Fprintf(w, "could not list models (non-fatal): %v\n", err)
		return nil
	}

	available := make(map[string]bool, len(models))
	for _, m := range models {
		available[m] = true
	}

	for _, model := range []string{genModel, embedModel} {
		if available[model] {
			fmt.Fprintf(w, "model %s: ready\n", model)
		} else {
			fmt.Fprintf(w, "model %s: not listed for this API key (continuing)\n", model)
		}
	}

	return nil
}
