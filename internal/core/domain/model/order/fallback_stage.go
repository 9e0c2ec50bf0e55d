package order

import (
	"fmt"

	"fulfilment/internal/pkg/errs"
)

// FallbackStage names a pipeline stage that degraded to its safety default
// while an order was processed. Stages are recorded on the order and persisted
// with it, so operators can see which orders completed without the full set of
// collaborator signals.
type FallbackStage string

const (
	// StagePredict means the shortage prediction collaborator was unavailable
	// and no line was treated as at risk.
	StagePredict FallbackStage = "predict"

	// StageSuggest means the substitution suggestion collaborator failed for at
	// least one at-risk line and that line got no replacement candidates.
	StageSuggest FallbackStage = "suggest"

	// StageDecide means the shortage decision collaborator was unavailable and
	// every line defaulted to being kept.
	StageDecide FallbackStage = "decide"

	// StageResolve means a decided replacement could not be resolved in the
	// warehouse catalog and the original item was kept instead.
	StageResolve FallbackStage = "resolve"
)

// ParseFallbackStage converts a persisted stage string back to a FallbackStage.
func ParseFallbackStage(s string) (FallbackStage, error) {
	stage := FallbackStage(s)
	if err := stage.Validate(); err != nil {
		return "", err
	}
	return stage, nil
}

// Validate checks that the stage is one of the known pipeline stages.
func (s FallbackStage) Validate() error {
	switch s {
	case StagePredict, StageSuggest, StageDecide, StageResolve:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("fallbackStage",
			fmt.Errorf("%q is not a known pipeline stage", string(s)))
	}
}

// String returns the stage name as persisted and logged.
func (s FallbackStage) String() string {
	return string(s)
}
