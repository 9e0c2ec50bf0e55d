package gateways

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
)

// SuggestClient calls the substitution suggestion collaborator over HTTP.
// Implements ports.SubstitutionSuggester.
type SuggestClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewSuggestClient creates a suggestion gateway client with a bounded
// per-call timeout.
func NewSuggestClient(baseURL string, timeout time.Duration, logger *slog.Logger) *SuggestClient {
	return &SuggestClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "suggest_client"),
	}
}

type suggestRequest struct {
	LineID      int     `json:"lineId"`
	ProductCode string  `json:"productCode"`
	Qty         float64 `json:"qty"`
}

type suggestResponse struct {
	LineID           int   `json:"lineId"`
	SuggestedLineIDs []int `json:"suggestedLineIds"`
}

// SuggestReplacements asks the collaborator for ranked replacement
// candidates for one order line. Candidates reference warehouse catalog
// identifiers. The second return value is false when the collaborator could
// not be consulted; the caller then treats the line as having no candidates.
func (c *SuggestClient) SuggestReplacements(ctx context.Context, item *order.Item) ([]kernel.CatalogEntryID, bool) {
	reqBody := suggestRequest{
		LineID:      item.LineID().Int(),
		ProductCode: item.ProductCode(),
		Qty:         item.Qty().Float64(),
	}

	var resp suggestResponse
	if err := postJSON(ctx, c.client, c.baseURL+"/substitution/suggest", reqBody, &resp); err != nil {
		c.logger.WarnContext(ctx, "Substitution suggestion call failed",
			"line_id", item.LineID().String(), "error", err)
		return nil, false
	}

	candidates := make([]kernel.CatalogEntryID, 0, len(resp.SuggestedLineIDs))
	for _, raw := range resp.SuggestedLineIDs {
		candidate, err := kernel.NewCatalogEntryID(raw)
		if err != nil {
			c.logger.WarnContext(ctx, "Suggestion response contains invalid candidate id",
				"line_id", item.LineID().String(), "candidate_id", raw)
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, true
}
