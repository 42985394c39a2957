package rpc

import (
	"context"
	"math"
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	lighthttp "github.com/cometbft/cometbft/light/provider/http"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
)

// HeaderData is the subset of a signed header needed to anchor a light client.
type HeaderData struct {
	ChainID            string
	Height             uint64
	Time               time.Time
	AppHash            []byte
	NextValidatorsHash []byte
}

// ChainService is the remote chain as seen by the genesis generator.
type ChainService interface {
	// LatestHeight returns the height of the latest committed block.
	LatestHeight(ctx context.Context) (uint64, error)
	// HeaderAt returns the signed header data at the given height.
	HeaderAt(ctx context.Context, height uint64) (*HeaderData, error)
}

var _ ChainService = (*TendermintRPCClient)(nil)

// TendermintRPCClient is a ChainService backed by a Tendermint/CometBFT RPC endpoint.
type TendermintRPCClient struct {
	remote    string
	rpcClient *rpchttp.HTTP
}

// NewTendermintRPCClient creates a client for the RPC endpoint at rpcURL. If no
// scheme is provided, http is used. The timeout is rounded up to whole seconds
// and must be positive.
func NewTendermintRPCClient(rpcURL string, timeout time.Duration) (*TendermintRPCClient, error) {
	if timeout <= 0 {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidConfig, "rpc timeout must be positive, got %s", timeout)
	}
	if !strings.Contains(rpcURL, "://") {
		rpcURL = "http://" + rpcURL
	}

	rpcClient, err := rpchttp.NewWithTimeout(rpcURL, "/websocket", timeoutSeconds(timeout))
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrChainService, "failed to create rpc client for %s: %s", rpcURL, err)
	}

	return &TendermintRPCClient{
		remote:    rpcURL,
		rpcClient: rpcClient,
	}, nil
}

// timeoutSeconds converts timeout to the whole seconds the cometbft client
// takes, where 0 would disable the timeout.
func timeoutSeconds(timeout time.Duration) uint {
	return uint(math.Ceil(timeout.Seconds()))
}

// Remote returns the RPC endpoint the client talks to.
func (c *TendermintRPCClient) Remote() string {
	return c.remote
}

// LatestHeight queries the height of the latest commit.
func (c *TendermintRPCClient) LatestHeight(ctx context.Context) (uint64, error) {
	commit, err := c.rpcClient.Commit(ctx, nil)
	if err != nil {
		return 0, errorsmod.Wrapf(ibcerrors.ErrChainService, "failed to query latest commit from %s: %s", c.remote, err)
	}
	if commit.Header == nil {
		return 0, errorsmod.Wrap(ibcerrors.ErrChainService, "latest commit has no signed header")
	}
	if commit.Header.Height <= 0 {
		return 0, errorsmod.Wrapf(ibcerrors.ErrChainService, "latest commit has invalid height %d", commit.Header.Height)
	}

	return uint64(commit.Header.Height), nil
}

// QueryChainID queries the chain ID from the RPC client
func (c *TendermintRPCClient) QueryChainID(ctx context.Context) (string, error) {
	status, err := c.rpcClient.Status(ctx)
	if err != nil {
		return "", errorsmod.Wrapf(ibcerrors.ErrChainService, "failed to query status from %s: %s", c.remote, err)
	}
	return status.NodeInfo.Network, nil
}

// HeaderAt fetches the light block at height and returns its header data. The
// light block is checked against the chain id reported by the node.
func (c *TendermintRPCClient) HeaderAt(ctx context.Context, height uint64) (*HeaderData, error) {
	if height == 0 || height > math.MaxInt64 {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidHeight, "height %d is out of range", height)
	}

	chainID, err := c.QueryChainID(ctx)
	if err != nil {
		return nil, err
	}

	lightBlock, err := lighthttp.NewWithClient(chainID, c.rpcClient).LightBlock(ctx, int64(height))
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrChainService, "failed to query light block at height %d: %s", height, err)
	}

	header := lightBlock.SignedHeader.Header
	if header.Height != int64(height) {
		return nil, errorsmod.Wrapf(ibcerrors.ErrChainService, "light block height %d does not match requested height %d", header.Height, height)
	}

	return &HeaderData{
		ChainID:            header.ChainID,
		Height:             uint64(header.Height),
		Time:               header.Time,
		AppHash:            header.AppHash.Bytes(),
		NextValidatorsHash: header.NextValidatorsHash.Bytes(),
	}, nil
}
