package tier

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/credtier/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CredentialChecker interface {
		CheckCredentials(ctx context.Context, address common.Address, ids []model.CredentialID) model.CheckResult
	}
	ClassifierMetrics interface {
		ObserveClassify(path string, report model.TierReport, started time.Time)
	}
)
