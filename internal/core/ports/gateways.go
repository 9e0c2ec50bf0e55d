package ports

import (
	"context"

	"fulfilment/internal/core/domain/model/decision"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
)

// Gateway ports wrap the three external collaborators of the fulfilment
// pipeline. Each implementation absorbs transport failures and returns the
// documented stage default instead, so collaborator unavailability can never
// fail an order. The boolean result reports whether the real collaborator
// answered: false means the default was taken and the stage degraded.

// ShortagePredictor asks the prediction collaborator which lines of an order
// are at risk of shortage.
type ShortagePredictor interface {
	// PredictAtRiskLines returns the identifiers of at-risk lines.
	// On collaborator failure it returns an empty set and false: no line is
	// treated as at risk and the order degrades to "keep everything".
	PredictAtRiskLines(ctx context.Context, ord *order.Order) ([]kernel.OrderLineID, bool)
}

// SubstitutionSuggester asks the suggestion collaborator for ranked
// replacement candidates for one at-risk order line.
type SubstitutionSuggester interface {
	// SuggestReplacements returns warehouse catalog identifiers ranked best
	// first, possibly empty. On collaborator failure it returns an empty list
	// and false; a failure for one line never affects other lines.
	SuggestReplacements(ctx context.Context, item *order.Item) ([]kernel.CatalogEntryID, bool)
}

// DecisionProposal is one line of the batch request sent to the decision
// collaborator: the original line plus the best replacement candidate, when
// one was suggested.
type DecisionProposal struct {
	LineID    kernel.OrderLineID
	Qty       kernel.Quantity
	Candidate *CandidateProposal // nil when no replacement was suggested
}

// CandidateProposal is the proposed replacement side of a DecisionProposal.
type CandidateProposal struct {
	CandidateID kernel.CatalogEntryID
	Qty         kernel.Quantity
}

// ShortageDecider asks the decision collaborator for the final outcome of
// every line of an order in one batch call.
type ShortageDecider interface {
	// DecideShortages returns one decision per line. On collaborator failure
	// it returns no decisions and false; the engine treats missing decisions
	// as Keep, so the whole order defaults to being kept.
	DecideShortages(ctx context.Context, proposals []DecisionProposal) ([]decision.ShortageDecision, bool)
}
