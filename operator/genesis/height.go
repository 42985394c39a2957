package genesis

import (
	"context"

	"cosmossdk.io/log"

	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/rpc"
)

// ResolveTrustedHeight returns trustedBlock when it is set, without checking it
// against the chain. Otherwise it returns the latest committed height of the
// chain and logs it.
func ResolveTrustedHeight(ctx context.Context, logger log.Logger, chainService rpc.ChainService, trustedBlock *uint64) (uint64, error) {
	if trustedBlock != nil {
		return *trustedBlock, nil
	}

	latestHeight, err := chainService.LatestHeight(ctx)
	if err != nil {
		return 0, err
	}

	logger.Info("latest block height", "height", latestHeight)
	return latestHeight, nil
}
