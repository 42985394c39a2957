package mock

import (
	"context"
	"encoding/binary"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/cometbft/cometbft/crypto/tmhash"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/rpc"
)

var _ rpc.ChainService = (*ChainService)(nil)

// ChainService is an in-memory rpc.ChainService. Every height up to Latest has
// a header derived from ChainID and the height unless Headers overrides it.
type ChainService struct {
	ChainID   string
	Latest    uint64
	GenesisAt time.Time
	Headers   map[uint64]*rpc.HeaderData

	// Err, when set, is returned by every query.
	Err error

	LatestHeightCalls int
	HeaderAtCalls     []uint64
}

// NewChainService returns a ChainService for chainID whose latest height is latest.
func NewChainService(chainID string, latest uint64) *ChainService {
	return &ChainService{
		ChainID:   chainID,
		Latest:    latest,
		GenesisAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Headers:   make(map[uint64]*rpc.HeaderData),
	}
}

// LatestHeight implements rpc.ChainService.
func (c *ChainService) LatestHeight(context.Context) (uint64, error) {
	c.LatestHeightCalls++
	if c.Err != nil {
		return 0, errorsmod.Wrap(ibcerrors.ErrChainService, c.Err.Error())
	}
	return c.Latest, nil
}

// HeaderAt implements rpc.ChainService.
func (c *ChainService) HeaderAt(_ context.Context, height uint64) (*rpc.HeaderData, error) {
	c.HeaderAtCalls = append(c.HeaderAtCalls, height)
	if c.Err != nil {
		return nil, errorsmod.Wrap(ibcerrors.ErrChainService, c.Err.Error())
	}
	if header, ok := c.Headers[height]; ok {
		return header, nil
	}
	if height == 0 || height > c.Latest {
		return nil, errorsmod.Wrapf(ibcerrors.ErrChainService, "height %d must be less than or equal to the current blockchain height %d", height, c.Latest)
	}
	return c.MakeHeader(height), nil
}

// MakeHeader returns the deterministic header the service reports at height.
func (c *ChainService) MakeHeader(height uint64) *rpc.HeaderData {
	return &rpc.HeaderData{
		ChainID:            c.ChainID,
		Height:             height,
		Time:               c.GenesisAt.Add(time.Duration(height) * 6 * time.Second),
		AppHash:            tmhash.Sum(binary.BigEndian.AppendUint64([]byte("app_hash"), height)),
		NextValidatorsHash: tmhash.Sum(binary.BigEndian.AppendUint64([]byte("next_validators"), height)),
	}
}
