package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/credtier/internal/credential"
	"github.com/goodnatureofminers/credtier/internal/metrics"
	"github.com/goodnatureofminers/credtier/internal/model"
	"github.com/goodnatureofminers/credtier/internal/pkg/ethclient"
	"github.com/goodnatureofminers/credtier/internal/service/tier"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	RPCURL           string        `long:"rpc-url" env:"CYBER_RPC" description:"chain RPC URL" default:"https://rpc.cyber.co"`
	RegistryAddress  string        `long:"registry-address" env:"CRED_CHECKER_REGISTRY_ADDRESS" description:"credential registry contract" default:"0x9baBBbE884fe75244f277F90d4bB696434fA1920"`
	MulticallAddress string        `long:"multicall-address" env:"CRED_CHECKER_MULTICALL_ADDRESS" description:"Multicall3 contract" default:"0xcA11bde05977b3631167028862bE2a173976CA11"`
	CredChainID      uint64        `long:"cred-chain-id" env:"CRED_CHECKER_CRED_CHAIN_ID" description:"chain id the credentials were issued for" default:"7560"`
	Network          model.Network `long:"network" env:"CRED_CHECKER_NETWORK" description:"network name" default:"cyber"`
	Timeout          time.Duration `long:"timeout" env:"CRED_CHECKER_TIMEOUT" description:"deadline for the whole check, 0 waits indefinitely" default:"0s"`
	MetricsTextfile  string        `long:"metrics-textfile" env:"CRED_CHECKER_METRICS_TEXTFILE" description:"write prometheus metrics to this file after the check"`

	Args struct {
		Address string `positional-arg-name:"address" description:"account address to check"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("invalid arguments", zap.Error(err))
	}

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Fatal("credential check failed", zap.Error(err))
	}
}

// parseConfig reads flags, env and the positional address. Usage is written
// to usage when the address is missing.
func parseConfig(args []string, usage io.Writer) (config, error) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.HelpFlag)
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			_, _ = fmt.Fprintln(usage, ferr.Message)
			return cfg, err
		}
		if errors.As(err, &ferr) && ferr.Type == flags.ErrRequired {
			parser.WriteHelp(usage)
		}
		return cfg, err
	}

	if !common.IsHexAddress(cfg.Args.Address) {
		return cfg, fmt.Errorf("invalid account address %q", cfg.Args.Address)
	}
	if !common.IsHexAddress(cfg.RegistryAddress) {
		return cfg, fmt.Errorf("invalid registry address %q", cfg.RegistryAddress)
	}
	if !common.IsHexAddress(cfg.MulticallAddress) {
		return cfg, fmt.Errorf("invalid multicall address %q", cfg.MulticallAddress)
	}
	return cfg, nil
}

func (c config) credentialConfig() credential.Config {
	return credential.Config{
		RPCURL:      c.RPCURL,
		Registry:    common.HexToAddress(c.RegistryAddress),
		Multicall:   common.HexToAddress(c.MulticallAddress),
		CredChainID: c.CredChainID,
		Network:     c.Network,
	}
}

func run(ctx context.Context, cfg config, out io.Writer, logger *zap.Logger) error {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	credCfg := cfg.credentialConfig()
	logger = logger.With(zap.String("network", string(credCfg.Network)))

	dialer, err := ethclient.NewDialer(credCfg.RPCURL, metrics.NewRPCClient(credCfg.Network))
	if err != nil {
		return fmt.Errorf("init rpc dialer: %w", err)
	}
	checker, err := credential.NewChecker(
		credCfg,
		func(ctx context.Context) (credential.ContractCaller, error) {
			client, err := dialer.Dial(ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
		metrics.NewCredentialChecker(credCfg.Network),
		logger.Named("checker"),
	)
	if err != nil {
		return fmt.Errorf("init credential checker: %w", err)
	}
	classifier, err := tier.NewClassifier(checker, metrics.NewTierClassifier(credCfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init tier classifier: %w", err)
	}

	report := classifier.Classify(ctx, common.HexToAddress(cfg.Args.Address))
	// an interrupted run proves nothing about the account
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("classify: %w", err)
	}
	if err := tier.Format(out, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if cfg.MetricsTextfile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			return err
		}
	}
	return nil
}
