package credential

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ContractCaller interface {
		CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
		Close()
	}
	Metrics interface {
		ObserveCheck(err error, minted bool, ids int, started time.Time)
	}
)

// DialFunc opens a client for a single batched read. The caller closes it.
type DialFunc func(ctx context.Context) (ContractCaller, error)
