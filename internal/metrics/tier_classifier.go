package metrics

import (
	"time"

	"github.com/goodnatureofminers/credtier/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	classifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "credtier",
		Subsystem: "tier_classifier",
		Name:      "classifications_total",
		Help:      "Count of tier classifications by resolution path and tier.",
	}, []string{"network", "path", "tier"})
	classifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credtier",
		Subsystem: "tier_classifier",
		Name:      "classification_duration_seconds",
		Help:      "Duration of a full tier classification.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "path"})
	classifyHeldCredentials = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "credtier",
		Subsystem: "tier_classifier",
		Name:      "held_credentials",
		Help:      "Number of reward credentials held per classified account.",
		Buckets:   prometheus.LinearBuckets(0, 1, 9),
	}, []string{"network"})
)

type TierClassifier struct {
	network model.Network
}

func NewTierClassifier(network model.Network) *TierClassifier {
	if network == "" {
		network = "unknown"
	}
	return &TierClassifier{network: network}
}

func (m TierClassifier) ObserveClassify(path string, report model.TierReport, started time.Time) {
	classifyTotal.WithLabelValues(string(m.network), path, string(report.Eligibility())).Inc()
	classifyDuration.WithLabelValues(string(m.network), path).Observe(time.Since(started).Seconds())
	classifyHeldCredentials.WithLabelValues(string(m.network)).Observe(float64(report.TotalCount))
}
