package tendermint

import (
	"strings"
	"time"

	errorsmod "cosmossdk.io/errors"

	"github.com/cometbft/cometbft/light"
	cmttypes "github.com/cometbft/cometbft/types"

	clienttypes "github.com/SecretSaturn/sp1-ics07-tendermint/modules/core/02-client/types"
)

// DefaultTrustingPeriod is used for both the trusting and the unbonding period
// of a freshly created client.
const DefaultTrustingPeriod = 14 * 24 * time.Hour

// ClientState holds the trust parameters and the latest trusted height of the
// light client.
type ClientState struct {
	ChainId         string
	TrustLevel      Fraction
	LatestHeight    clienttypes.Height
	IsFrozen        bool
	TrustingPeriod  time.Duration
	UnbondingPeriod time.Duration
}

// NewClientState creates a new ClientState instance
func NewClientState(
	chainID string, trustLevel Fraction,
	trustingPeriod, ubdPeriod time.Duration,
	latestHeight clienttypes.Height,
) *ClientState {
	return &ClientState{
		ChainId:         chainID,
		TrustLevel:      trustLevel,
		LatestHeight:    latestHeight,
		IsFrozen:        false,
		TrustingPeriod:  trustingPeriod,
		UnbondingPeriod: ubdPeriod,
	}
}

// GetChainID returns the chain-id
func (cs ClientState) GetChainID() string {
	return cs.ChainId
}

// GetLatestHeight returns latest block height.
func (cs ClientState) GetLatestHeight() clienttypes.Height {
	return cs.LatestHeight
}

// Validate performs a basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if strings.TrimSpace(cs.ChainId) == "" {
		return errorsmod.Wrap(ErrInvalidChainID, "chain id cannot be empty string")
	}

	if len(cs.ChainId) > cmttypes.MaxChainIDLen {
		return errorsmod.Wrapf(ErrInvalidChainID, "chainID is too long; got: %d, max: %d", len(cs.ChainId), cmttypes.MaxChainIDLen)
	}

	if err := light.ValidateTrustLevel(cs.TrustLevel.ToTendermint()); err != nil {
		return errorsmod.Wrap(ErrInvalidTrustLevel, err.Error())
	}
	if cs.TrustingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidTrustingPeriod, "trusting period must be greater than zero")
	}
	if cs.UnbondingPeriod <= 0 {
		return errorsmod.Wrap(ErrInvalidUnbondingPeriod, "unbonding period must be greater than zero")
	}

	revision, err := clienttypes.ParseChainID(cs.ChainId)
	if err != nil {
		return err
	}
	// the latest height revision number must match the chain id revision number
	if cs.LatestHeight.RevisionNumber != revision {
		return errorsmod.Wrapf(ErrInvalidHeaderHeight,
			"latest height revision number must match chain id revision number (%d != %d)", cs.LatestHeight.RevisionNumber, revision)
	}
	if cs.LatestHeight.RevisionHeight == 0 {
		return errorsmod.Wrap(ErrInvalidHeaderHeight, "tendermint client's latest height revision height cannot be zero")
	}
	if cs.TrustingPeriod > cs.UnbondingPeriod {
		return errorsmod.Wrapf(
			ErrInvalidTrustingPeriod,
			"trusting period (%s) should be <= unbonding period (%s)", cs.TrustingPeriod, cs.UnbondingPeriod,
		)
	}

	return nil
}
