package requisition

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	domain "seismic-catalog/internal/domain/requisition"
)

var (
	requisitionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "requisition",
		Name:      "created_total",
		Help:      "Total number of requisitions submitted.",
	})

	requisitionDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "requisition",
		Name:      "decisions_total",
		Help:      "Total number of approval decisions broken down by action and result.",
	}, []string{"action", "result"})
)

func recordDecision(action domain.Action, err error) {
	var result string
	switch {
	case err == nil && action.Approves():
		result = "approved"
	case err == nil:
		result = "declined"
	case errors.Is(err, domain.ErrNotFound):
		result = "not_found"
	case errors.Is(err, domain.ErrUnauthorized):
		result = "unauthorized"
	case errors.Is(err, domain.ErrInvalidTransition):
		result = "invalid_transition"
	default:
		result = "error"
	}
	requisitionDecisions.WithLabelValues(string(action), result).Inc()
}
