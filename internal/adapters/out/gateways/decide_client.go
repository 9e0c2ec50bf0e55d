package gateways

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fulfilment/internal/core/domain/model/decision"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/ports"
)

// DecideClient calls the shortage decision collaborator over HTTP.
// Implements ports.ShortageDecider.
type DecideClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewDecideClient creates a decision gateway client with a bounded per-call
// timeout.
func NewDecideClient(baseURL string, timeout time.Duration, logger *slog.Logger) *DecideClient {
	return &DecideClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With("component", "decide_client"),
	}
}

type decideFromRequest struct {
	LineID int     `json:"lineId"`
	Qty    float64 `json:"qty"`
}

type decideToRequest struct {
	CandidateID int     `json:"candidateId"`
	Qty         float64 `json:"qty"`
}

type decideLineRequest struct {
	From decideFromRequest `json:"from"`
	To   *decideToRequest  `json:"to,omitempty"`
}

type decideRequest struct {
	Lines []decideLineRequest `json:"lines"`
}

type decideLineResponse struct {
	LineID         int      `json:"lineId"`
	Action         string   `json:"action"`
	ReplacementQty *float64 `json:"replacementQty,omitempty"`
}

type decideResponse struct {
	Lines []decideLineResponse `json:"lines"`
}

// DecideShortages sends one batch request covering every order line and
// returns the per-line decisions. Response entries that cannot be mapped to
// a well-formed decision are skipped; a line without a decision defaults to
// being kept. The second return value is false when the collaborator could
// not be consulted at all.
func (c *DecideClient) DecideShortages(
	ctx context.Context,
	proposals []ports.DecisionProposal,
) ([]decision.ShortageDecision, bool) {
	reqBody := decideRequest{Lines: make([]decideLineRequest, 0, len(proposals))}
	for _, proposal := range proposals {
		line := decideLineRequest{
			From: decideFromRequest{
				LineID: proposal.LineID.Int(),
				Qty:    proposal.Qty.Float64(),
			},
		}
		if proposal.Candidate != nil {
			line.To = &decideToRequest{
				CandidateID: proposal.Candidate.CandidateID.Int(),
				Qty:         proposal.Candidate.Qty.Float64(),
			}
		}
		reqBody.Lines = append(reqBody.Lines, line)
	}

	var resp decideResponse
	if err := postJSON(ctx, c.client, c.baseURL+"/decision/order", reqBody, &resp); err != nil {
		c.logger.WarnContext(ctx, "Shortage decision call failed", "error", err)
		return nil, false
	}

	decisions := make([]decision.ShortageDecision, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		mapped, err := c.mapDecision(line)
		if err != nil {
			c.logger.WarnContext(ctx, "Decision response contains invalid entry",
				"line_id", line.LineID, "action", line.Action, "error", err)
			continue
		}
		decisions = append(decisions, mapped)
	}

	return decisions, true
}

func (c *DecideClient) mapDecision(line decideLineResponse) (decision.ShortageDecision, error) {
	lineID, err := kernel.NewOrderLineID(line.LineID)
	if err != nil {
		return decision.ShortageDecision{}, err
	}

	action, err := decision.ParseAction(line.Action)
	if err != nil {
		return decision.ShortageDecision{}, err
	}

	switch action {
	case decision.Replace:
		var replacementQty *kernel.Quantity
		if line.ReplacementQty != nil {
			qty, qtyErr := kernel.NewQuantityFromFloat(*line.ReplacementQty)
			if qtyErr != nil {
				return decision.ShortageDecision{}, qtyErr
			}
			replacementQty = &qty
		}
		return decision.NewReplaceDecision(lineID, replacementQty)
	case decision.Delete:
		return decision.NewDeleteDecision(lineID)
	default:
		return decision.NewKeepDecision(lineID)
	}
}
