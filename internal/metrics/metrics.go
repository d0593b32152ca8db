package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeTrue  = "true"
	OutcomeFalse = "false"
	OutcomeError = "error"

	DecisionKeep   = "keep"
	DecisionRename = "rename"
)

var (
	evaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rulehunter_evaluations_total",
			Help: "Total rule expression evaluations by outcome",
		},
		[]string{"outcome"},
	)

	planEntries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rulehunter_plan_entries_total",
			Help: "Total rename plan entries by decision",
		},
		[]string{"decision"},
	)
)

// RecordEvaluation counts one evaluation. A non-nil err wins over result.
func RecordEvaluation(result bool, err error) {
	outcome := OutcomeFalse
	switch {
	case err != nil:
		outcome = OutcomeError
	case result:
		outcome = OutcomeTrue
	}
	evaluations.WithLabelValues(outcome).Inc()
}

// RecordPlanEntry counts one planned entity.
func RecordPlanEntry(kept bool) {
	if kept {
		planEntries.WithLabelValues(DecisionKeep).Inc()
		return
	}
	planEntries.WithLabelValues(DecisionRename).Inc()
}
