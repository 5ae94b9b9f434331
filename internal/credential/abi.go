package credential

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/credtier/internal/model"
)

const (
	registryABIJSON = `[{
		"type": "function",
		"name": "isCredMinted",
		"stateMutability": "view",
		"inputs": [
			{"name": "credChainId", "internalType": "uint256", "type": "uint256"},
			{"name": "credId", "internalType": "uint256", "type": "uint256"},
			{"name": "minter", "internalType": "address", "type": "address"}
		],
		"outputs": [{"name": "", "internalType": "bool", "type": "bool"}]
	}]`

	multicallABIJSON = `[{
		"type": "function",
		"name": "aggregate3",
		"stateMutability": "payable",
		"inputs": [{
			"name": "calls",
			"type": "tuple[]",
			"internalType": "struct Multicall3.Call3[]",
			"components": [
				{"name": "target", "type": "address"},
				{"name": "allowFailure", "type": "bool"},
				{"name": "callData", "type": "bytes"}
			]
		}],
		"outputs": [{
			"name": "returnData",
			"type": "tuple[]",
			"internalType": "struct Multicall3.Result[]",
			"components": [
				{"name": "success", "type": "bool"},
				{"name": "returnData", "type": "bytes"}
			]
		}]
	}]`

	isCredMintedMethod = "isCredMinted"
	aggregate3Method   = "aggregate3"
)

// mintedWord is the ABI encoding of a bool true return value.
var mintedWord = common.LeftPadBytes([]byte{1}, 32)

type call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

type result3 struct {
	Success    bool
	ReturnData []byte
}

type codec struct {
	registry    abi.ABI
	multicall   abi.ABI
	registryTo  common.Address
	credChainID *big.Int
}

func newCodec(cfg Config) (*codec, error) {
	registry, err := abi.JSON(strings.NewReader(registryABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse registry abi: %w", err)
	}
	multicall, err := abi.JSON(strings.NewReader(multicallABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse multicall abi: %w", err)
	}
	return &codec{
		registry:    registry,
		multicall:   multicall,
		registryTo:  cfg.Registry,
		credChainID: new(big.Int).SetUint64(cfg.CredChainID),
	}, nil
}

// encodeAggregate packs one strict isCredMinted sub-call per id into an aggregate3 call.
func (c *codec) encodeAggregate(minter common.Address, ids []model.CredentialID) ([]byte, error) {
	calls := make([]call3, 0, len(ids))
	for _, id := range ids {
		data, err := c.registry.Pack(isCredMintedMethod, c.credChainID, new(big.Int).SetUint64(uint64(id)), minter)
		if err != nil {
			return nil, fmt.Errorf("pack %s(%d): %w", isCredMintedMethod, id, err)
		}
		calls = append(calls, call3{
			Target:       c.registryTo,
			AllowFailure: false,
			CallData:     data,
		})
	}

	data, err := c.multicall.Pack(aggregate3Method, calls)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", aggregate3Method, err)
	}
	return data, nil
}

func (c *codec) decodeAggregate(raw []byte) ([]result3, error) {
	out, err := c.multicall.Unpack(aggregate3Method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", aggregate3Method, err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("unpack %s: got %d return values", aggregate3Method, len(out))
	}
	return *abi.ConvertType(out[0], new([]result3)).(*[]result3), nil
}

func (r result3) minted() bool {
	return r.Success && bytes.Equal(r.ReturnData, mintedWord)
}
