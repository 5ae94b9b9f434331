// Package credential queries the credential registry through Multicall3.
package credential

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/credtier/internal/model"
	"go.uber.org/zap"
)

// ErrCheckingCredentialStatus is the diagnostic returned for every failed query.
const ErrCheckingCredentialStatus = "Error checking credential status"

// Checker reports whether an account holds every credential of a batch.
type Checker struct {
	cfg     Config
	codec   *codec
	dial    DialFunc
	metrics Metrics
	logger  *zap.Logger
}

// NewChecker builds a Checker bound to cfg. dial is invoked once per query.
func NewChecker(cfg Config, dial DialFunc, metrics Metrics, logger *zap.Logger) (*Checker, error) {
	if dial == nil {
		return nil, errors.New("credential checker dial func is required")
	}
	if metrics == nil {
		return nil, errors.New("credential checker metrics is required")
	}
	c, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}
	return &Checker{
		cfg:     cfg,
		codec:   c,
		dial:    dial,
		metrics: metrics,
		logger: logger.With(
			zap.String("network", string(cfg.Network)),
			zap.String("registry", cfg.Registry.Hex()),
		),
	}, nil
}

// CheckCredentials runs one batched read for ids and reports Minted only when
// every sub-call succeeded and returned true. It never fails: transport,
// revert and decoding errors are logged and flattened into a negative result
// carrying ErrCheckingCredentialStatus, so callers cannot tell an absent
// credential from a failed lookup.
func (c *Checker) CheckCredentials(ctx context.Context, address common.Address, ids []model.CredentialID) model.CheckResult {
	if len(ids) == 0 {
		return model.CheckResult{Message: "no credential ids to check"}
	}
	for _, id := range ids {
		if !id.Valid() {
			return model.CheckResult{Message: fmt.Sprintf("credential id %d is not a reward credential", id)}
		}
	}

	started := time.Now()
	minted, err := c.query(ctx, address, ids)
	c.metrics.ObserveCheck(err, minted, len(ids), started)
	if err != nil {
		c.logger.Error("error checking credentials",
			zap.String("address", address.Hex()),
			zap.Int("ids", len(ids)),
			zap.Error(err),
		)
		return model.CheckResult{Message: ErrCheckingCredentialStatus}
	}
	return model.CheckResult{Minted: minted}
}

func (c *Checker) query(ctx context.Context, address common.Address, ids []model.CredentialID) (bool, error) {
	data, err := c.codec.encodeAggregate(address, ids)
	if err != nil {
		return false, err
	}

	client, err := c.dial(ctx)
	if err != nil {
		return false, fmt.Errorf("init rpc client: %w", err)
	}
	defer client.Close()

	multicall := c.cfg.Multicall
	raw, err := client.CallContract(ctx, ethereum.CallMsg{To: &multicall, Data: data}, nil)
	if err != nil {
		return false, fmt.Errorf("call %s: %w", aggregate3Method, err)
	}

	results, err := c.codec.decodeAggregate(raw)
	if err != nil {
		return false, err
	}
	if len(results) != len(ids) {
		return false, fmt.Errorf("%s returned %d results for %d calls", aggregate3Method, len(results), len(ids))
	}

	for _, r := range results {
		if !r.minted() {
			return false, nil
		}
	}
	return true, nil
}
