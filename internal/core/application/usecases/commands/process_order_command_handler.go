package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fulfilment/internal/core/domain/model/catalog"
	"fulfilment/internal/core/domain/model/decision"
	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/core/domain/model/order"
	"fulfilment/internal/core/domain/services"
	"fulfilment/internal/core/ports"
)

// ProcessOrderCommandHandler is the order orchestration engine. It sequences
// the three collaborator calls (predict, suggest, decide), resolves warehouse
// catalog records for chosen replacements, applies the decisions, and persists
// the final order in one atomic write.
//
// Failure policy: collaborator failures are absorbed per stage (predict: no
// line at risk; suggest: no candidates for that line; decide: keep every
// line; catalog resolve: keep the original item) and recorded on the order as
// fallback stages. Only persistence failures propagate, because no safe
// default exists for "the order could not be durably recorded".
//
// The storage transaction begins only after every network call has completed,
// so a slow collaborator never holds a database transaction open.
type ProcessOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	predictor  ports.ShortagePredictor
	suggester  ports.SubstitutionSuggester
	decider    ports.ShortageDecider
	catalog    ports.CatalogReader
	publisher  ports.OrderEventPublisher
	finalizer  services.OrderFinalizer
	logger     *slog.Logger
}

// NewProcessOrderCommandHandler creates the orchestration engine with its
// collaborator gateways, catalog reader, unit of work factory, and the
// post-commit event publisher.
func NewProcessOrderCommandHandler(
	uowFactory OrderUoWFactory,
	predictor ports.ShortagePredictor,
	suggester ports.SubstitutionSuggester,
	decider ports.ShortageDecider,
	catalogReader ports.CatalogReader,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) ProcessOrderCommandHandler {
	return ProcessOrderCommandHandler{
		uowFactory: uowFactory,
		predictor:  predictor,
		suggester:  suggester,
		decider:    decider,
		catalog:    catalogReader,
		publisher:  publisher,
		finalizer:  services.NewOrderFinalizer(),
		logger:     logger.With("component", "process_order"),
	}
}

// Handle runs the fulfilment pipeline for one order:
// predict -> suggest (per at-risk line) -> decide (batch, all lines) ->
// resolve replacements -> apply -> persist.
//
// Returns an error only when the command is invalid, a decision could not be
// applied, or the durable write failed.
func (h *ProcessOrderCommandHandler) Handle(ctx context.Context, cmd ProcessOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ord := cmd.Order()
	log := h.logger.With("order_id", ord.ID().String())

	atRisk := h.predictAtRisk(ctx, ord, log)
	candidates := h.suggestCandidates(ctx, ord, atRisk, log)
	decisions := h.decideShortages(ctx, ord, candidates, log)
	entries := h.resolveReplacements(ctx, decisions, candidates, log)

	unresolved, err := h.finalizer.Finalize(ord, decisions, candidates, entries)
	if err != nil {
		return err
	}
	if len(unresolved) > 0 {
		ord.MarkFallback(order.StageResolve)
		log.WarnContext(ctx, "Replacements kept as original items", "line_ids", unresolved)
	}

	if err = h.persist(ctx, ord); err != nil {
		return err
	}

	log.InfoContext(ctx, "Order finalized",
		"items", len(ord.Items()),
		"fallback_stages", ord.FallbackStages())

	h.publishFinalized(ctx, ord, log)
	return nil
}

// predictAtRisk asks the prediction collaborator which lines are at risk.
// On collaborator failure nothing is at risk; the decide stage still runs for
// every line so behavior stays uniform.
func (h *ProcessOrderCommandHandler) predictAtRisk(
	ctx context.Context,
	ord *order.Order,
	log *slog.Logger,
) []kernel.OrderLineID {
	atRisk, ok := h.predictor.PredictAtRiskLines(ctx, ord)
	if !ok {
		ord.MarkFallback(order.StagePredict)
		log.WarnContext(ctx, "Shortage prediction unavailable, treating no line as at risk")
		return nil
	}

	log.InfoContext(ctx, "Shortage prediction completed", "at_risk_lines", len(atRisk))
	return atRisk
}

// suggestCandidates gathers ranked replacement candidates for every at-risk
// line. A failure for one line defaults that line to no candidates without
// affecting the others.
func (h *ProcessOrderCommandHandler) suggestCandidates(
	ctx context.Context,
	ord *order.Order,
	atRisk []kernel.OrderLineID,
	log *slog.Logger,
) map[kernel.OrderLineID][]kernel.CatalogEntryID {
	candidates := make(map[kernel.OrderLineID][]kernel.CatalogEntryID, len(atRisk))

	for _, lineID := range atRisk {
		item, found := ord.Item(lineID)
		if !found {
			log.WarnContext(ctx, "Predicted line not present in order", "line_id", lineID.String())
			continue
		}

		suggested, ok := h.suggester.SuggestReplacements(ctx, item)
		if !ok {
			ord.MarkFallback(order.StageSuggest)
			log.WarnContext(ctx, "Substitution suggestion unavailable for line", "line_id", lineID.String())
		}
		candidates[lineID] = suggested
	}

	return candidates
}

// decideShortages sends one batch decision request covering every order line,
// pairing each line with its best candidate when one was suggested. On
// collaborator failure no decisions are returned and every line defaults to
// being kept.
func (h *ProcessOrderCommandHandler) decideShortages(
	ctx context.Context,
	ord *order.Order,
	candidates map[kernel.OrderLineID][]kernel.CatalogEntryID,
	log *slog.Logger,
) map[kernel.OrderLineID]decision.ShortageDecision {
	items := ord.Items()
	proposals := make([]ports.DecisionProposal, 0, len(items))
	for _, item := range items {
		proposal := ports.DecisionProposal{
			LineID: item.LineID(),
			Qty:    item.Qty(),
		}
		if suggested := candidates[item.LineID()]; len(suggested) > 0 {
			proposal.Candidate = &ports.CandidateProposal{
				CandidateID: suggested[0],
				Qty:         item.Qty(),
			}
		}
		proposals = append(proposals, proposal)
	}

	decided, ok := h.decider.DecideShortages(ctx, proposals)
	if !ok {
		ord.MarkFallback(order.StageDecide)
		log.WarnContext(ctx, "Shortage decision unavailable, keeping every line")
		return nil
	}

	decisions := make(map[kernel.OrderLineID]decision.ShortageDecision, len(decided))
	for _, d := range decided {
		decisions[d.LineID()] = d
	}

	log.InfoContext(ctx, "Shortage decisions received", "decisions", len(decisions))
	return decisions
}

// resolveReplacements bulk-fetches catalog records for every distinct
// candidate chosen by a replacement decision, falling back to single-record
// lookups for identifiers missing from the bulk result. Catalog failures are
// absorbed: an unresolvable record simply keeps the original item.
func (h *ProcessOrderCommandHandler) resolveReplacements(
	ctx context.Context,
	decisions map[kernel.OrderLineID]decision.ShortageDecision,
	candidates map[kernel.OrderLineID][]kernel.CatalogEntryID,
	log *slog.Logger,
) map[kernel.CatalogEntryID]catalog.Entry {
	seen := make(map[kernel.CatalogEntryID]struct{})
	wanted := make([]kernel.CatalogEntryID, 0, len(decisions))
	for lineID, d := range decisions {
		if d.Action() != decision.Replace {
			continue
		}
		suggested := candidates[lineID]
		if len(suggested) == 0 {
			continue
		}
		if _, dup := seen[suggested[0]]; dup {
			continue
		}
		seen[suggested[0]] = struct{}{}
		wanted = append(wanted, suggested[0])
	}

	entries := make(map[kernel.CatalogEntryID]catalog.Entry, len(wanted))
	if len(wanted) == 0 {
		return entries
	}

	batch, err := h.catalog.FindMany(ctx, wanted)
	if err != nil {
		log.WarnContext(ctx, "Bulk catalog lookup failed", "error", err)
	} else {
		entries = batch
	}

	// Defensive path: resolve and memoize any identifier the bulk result
	// did not cover.
	for _, id := range wanted {
		if _, resolved := entries[id]; resolved {
			continue
		}
		entry, found, findErr := h.catalog.FindOne(ctx, id)
		if findErr != nil {
			log.WarnContext(ctx, "Catalog lookup failed", "catalog_entry_id", id.String(), "error", findErr)
			continue
		}
		if found {
			entries[id] = entry
		}
	}

	return entries
}

// persist writes the finalized order inside one narrowly scoped transaction.
func (h *ProcessOrderCommandHandler) persist(ctx context.Context, ord *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// publishFinalized announces the finalized order to downstream consumers.
// Best-effort: publish failures are logged and never fail processing.
func (h *ProcessOrderCommandHandler) publishFinalized(ctx context.Context, ord *order.Order, log *slog.Logger) {
	stages := ord.FallbackStages()
	stageNames := make([]string, len(stages))
	for i, stage := range stages {
		stageNames[i] = stage.String()
	}

	event := ports.OrderFinalizedEvent{
		EventID:        uuid.NewString(),
		OrderID:        ord.ID().String(),
		CustomerID:     ord.CustomerID(),
		ItemCount:      len(ord.Items()),
		FallbackStages: stageNames,
		FinalizedAt:    time.Now().UTC(),
	}

	if err := h.publisher.PublishOrderFinalized(ctx, event); err != nil {
		log.WarnContext(ctx, "Failed to publish order finalized event", "error", err)
	}
}
