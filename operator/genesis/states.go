package genesis

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"

	"github.com/cometbft/cometbft/crypto/tmhash"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
	clienttypes "github.com/SecretSaturn/sp1-ics07-tendermint/modules/core/02-client/types"
	ibctm "github.com/SecretSaturn/sp1-ics07-tendermint/modules/light-clients/07-tendermint"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/rpc"
)

// BuildTrustedStates builds the client and consensus states trusting header at
// height. The trust level and the trusting and unbonding periods are fixed:
// 1/3 and two weeks. Either both states are returned or an error.
func BuildTrustedStates(height uint64, header *rpc.HeaderData) (*ibctm.ClientState, *ibctm.ConsensusState, error) {
	if header == nil {
		return nil, nil, errorsmod.Wrap(ibcerrors.ErrInvalidHeader, "header cannot be nil")
	}
	if header.Height != height {
		return nil, nil, errorsmod.Wrapf(ibcerrors.ErrInvalidHeader, "header height %d does not match trusted height %d", header.Height, height)
	}

	revisionNumber, err := clienttypes.ParseChainID(header.ChainID)
	if err != nil {
		return nil, nil, err
	}

	// the commitment root is a bytes32, app hashes are at most that long
	if len(header.AppHash) > 32 {
		return nil, nil, errorsmod.Wrapf(ibcerrors.ErrInvalidHeader, "app hash must be at most 32 bytes, got %d", len(header.AppHash))
	}
	if len(header.NextValidatorsHash) != tmhash.Size {
		return nil, nil, errorsmod.Wrapf(ibcerrors.ErrInvalidHeader, "next validators hash must be %d bytes, got %d", tmhash.Size, len(header.NextValidatorsHash))
	}

	clientState := ibctm.NewClientState(
		header.ChainID,
		ibctm.DefaultTrustLevel,
		ibctm.DefaultTrustingPeriod,
		ibctm.DefaultTrustingPeriod,
		clienttypes.NewHeight(revisionNumber, height),
	)
	if err := clientState.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ibcerrors.ErrInvalidHeader, err)
	}

	consensusState := ibctm.NewConsensusState(
		header.Time,
		ibctm.BytesToBytes32(header.AppHash),
		ibctm.BytesToBytes32(header.NextValidatorsHash),
	)
	if err := consensusState.ValidateBasic(); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ibcerrors.ErrInvalidHeader, err)
	}

	return clientState, consensusState, nil
}
