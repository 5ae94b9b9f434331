package metrics

import (
	"time"

	"github.com/goodnatureofminers/credtier/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	credentialCheckTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credtier",
		Subsystem: "credential_checker",
		Name:      "checks_total",
		Help:      "Count of batched credential checks by outcome.",
	}, []string{"network", "outcome"})
	credentialCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credtier",
		Subsystem: "credential_checker",
		Name:      "check_duration_seconds",
		Help:      "Duration of batched credential checks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "outcome"})
	credentialCheckBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credtier",
		Subsystem: "credential_checker",
		Name:      "batch_size",
		Help:      "Number of credential ids per batched check.",
		Buckets:   prometheus.LinearBuckets(1, 1, 8),
	}, []string{"network"})
)

type CredentialChecker struct {
	network model.Network
}

func NewCredentialChecker(network model.Network) *CredentialChecker {
	if network == "" {
		network = "unknown"
	}
	return &CredentialChecker{network: network}
}

// ObserveCheck records a batched check. Outcome is "minted", "not_minted" or "error".
func (m CredentialChecker) ObserveCheck(err error, minted bool, ids int, started time.Time) {
	outcome := "not_minted"
	switch {
	case err != nil:
		outcome = "error"
	case minted:
		outcome = "minted"
	}
	credentialCheckTotal.WithLabelValues(string(m.network), outcome).Inc()
	credentialCheckDuration.WithLabelValues(string(m.network), outcome).
		Observe(time.Since(started).Seconds())
	credentialCheckBatchSize.WithLabelValues(string(m.network)).Observe(float64(ids))
}
