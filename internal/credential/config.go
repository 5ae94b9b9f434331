package credential

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/credtier/internal/model"
)

const (
	DefaultRPCURL           = "https://rpc.cyber.co"
	DefaultRegistryAddress  = "0x9baBBbE884fe75244f277F90d4bB696434fA1920"
	DefaultMulticallAddress = "0xcA11bde05977b3631167028862bE2a173976CA11"
	DefaultCredChainID      = 7560
)

// Config is the read-only target of every credential query.
type Config struct {
	RPCURL      string
	Registry    common.Address
	Multicall   common.Address
	CredChainID uint64
	Network     model.Network
}

func DefaultConfig() Config {
	return Config{
		RPCURL:      DefaultRPCURL,
		Registry:    common.HexToAddress(DefaultRegistryAddress),
		Multicall:   common.HexToAddress(DefaultMulticallAddress),
		CredChainID: DefaultCredChainID,
		Network:     model.Cyber,
	}
}
