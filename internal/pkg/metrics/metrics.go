package metrics

import (
	"net/http"

	"foodshare/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "foodshare"

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	ClaimAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claim_attempts_total",
		Help:      "Claim attempts by outcome.",
	}, []string{"outcome"})

	ClaimGuardHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "claim_guard_hits_total",
		Help:      "Claims rejected by the tombstone guard without a database round trip.",
	})

	ListingsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Listing submissions by result.",
	}, []string{"result"})

	PanicsRecoveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panics_recovered_total",
		Help:      "Handler panics turned into 500 responses, by route.",
	}, []string{"route"})

	OutboxEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "outbox_events_total",
		Help:      "Outbox relay results per event.",
	}, []string{"result"})
)

const (
	OutcomeSuccess            = "success"
	OutcomeNotFound           = "not_found"
	OutcomeAlreadyClaimed     = "already_claimed"
	OutcomeExpired            = "expired"
	OutcomeSelfClaim          = "self_claim"
	OutcomeValidation         = "validation"
	OutcomeStorageUnavailable = "storage_unavailable"
	OutcomeError              = "error"
)

// Outcome maps an error onto a bounded label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errs.Is(err, errs.ErrValidation):
		return OutcomeValidation
	case errs.Is(err, errs.ErrNotFound):
		return OutcomeNotFound
	case errs.Is(err, errs.ErrAlreadyClaimed):
		return OutcomeAlreadyClaimed
	case errs.Is(err, errs.ErrExpired):
		return OutcomeExpired
	case errs.Is(err, errs.ErrSelfClaim):
		return OutcomeSelfClaim
	case errs.Is(err, errs.ErrStorageUnavailable):
		return OutcomeStorageUnavailable
	default:
		return OutcomeError
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
