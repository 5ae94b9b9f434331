// Package tier classifies accounts into reward tiers by held credentials.
package tier

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/credtier/internal/model"
	"github.com/goodnatureofminers/credtier/pkg/workerpool"
	"go.uber.org/zap"
)

// Classifier derives a TierReport from credential queries.
type Classifier struct {
	checker     CredentialChecker
	metrics     ClassifierMetrics
	credentials []model.CredentialID
	workerCount int
	logger      *zap.Logger
}

func NewClassifier(checker CredentialChecker, metrics ClassifierMetrics, logger *zap.Logger) (*Classifier, error) {
	if checker == nil {
		return nil, errors.New("credential checker is required")
	}
	if metrics == nil {
		return nil, errors.New("classifier metrics is required")
	}
	return &Classifier{
		checker:     checker,
		metrics:     metrics,
		credentials: model.RewardCredentials,
		workerCount: fanoutWorkerCount,
		logger:      logger.Named("classifier"),
	}, nil
}

// Classify first asks for every reward credential in a single batch and, if
// that fails, queries each credential on its own in parallel and counts the
// hits. A failed query counts as a credential not held, so Classify always
// returns a complete report.
func (c *Classifier) Classify(ctx context.Context, address common.Address) model.TierReport {
	started := time.Now()
	logger := c.logger.With(zap.String("address", address.Hex()))

	if res := c.checker.CheckCredentials(ctx, address, c.credentials); res.Minted {
		report := model.NewTierReport(len(c.credentials))
		logger.Debug("all credentials held in batch check")
		c.metrics.ObserveClassify(pathBatch, report, started)
		return report
	}

	results := workerpool.Map(ctx, c.workerCount, c.credentials,
		func(ctx context.Context, id model.CredentialID) model.CheckResult {
			return c.checker.CheckCredentials(ctx, address, []model.CredentialID{id})
		},
	)

	total := 0
	for i, res := range results {
		if res.Minted {
			total++
			continue
		}
		if res.Message != "" {
			logger.Warn("credential check failed, counted as not held",
				zap.Uint64("credential", uint64(c.credentials[i])),
				zap.String("message", res.Message),
			)
		}
	}

	report := model.NewTierReport(total)
	logger.Debug("credentials counted individually", zap.Int("total", total))
	c.metrics.ObserveClassify(pathFanout, report, started)
	return report
}
