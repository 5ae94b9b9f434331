package ethclient

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum"
	geth "github.com/ethereum/go-ethereum/ethclient"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	ContractCaller interface {
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
		Close()
	}
)

type ObservedClient struct {
	client     ContractCaller
	rpcMetrics RPCMetrics
}

func NewObservedClient(client ContractCaller, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) (out []byte, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("eth_call", err, started)
	}()
	return r.client.CallContract(ctx, msg, blockNumber)
}

func (r *ObservedClient) Close() {
	r.client.Close()
}

// Dialer opens a new observed client for every Dial call.
type Dialer struct {
	rawURL     string
	rpcMetrics RPCMetrics
	dial       func(ctx context.Context, rawURL string) (ContractCaller, error)
}

// NewDialer validates rawURL and returns a Dialer for it.
func NewDialer(rawURL string, rpcMetrics RPCMetrics) (*Dialer, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("rpc url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return &Dialer{
		rawURL:     rawURL,
		rpcMetrics: rpcMetrics,
		dial: func(ctx context.Context, rawURL string) (ContractCaller, error) {
			c, err := geth.DialContext(ctx, rawURL)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	}, nil
}

func (d *Dialer) Dial(ctx context.Context) (client *ObservedClient, err error) {
	started := time.Now()
	defer func() {
		d.rpcMetrics.Observe("dial", err, started)
	}()

	c, err := d.dial(ctx, d.rawURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", d.rawURL, err)
	}
	return NewObservedClient(c, d.rpcMetrics), nil
}
