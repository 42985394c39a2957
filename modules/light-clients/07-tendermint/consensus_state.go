package tendermint

import (
	"time"

	errorsmod "cosmossdk.io/errors"
)

// ConsensusState is the header commitment the light client trusts at the
// client state's latest height.
type ConsensusState struct {
	Timestamp time.Time
	// Root is the application state root (app hash) of the trusted header.
	Root               [32]byte
	NextValidatorsHash [32]byte
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(timestamp time.Time, root, nextValsHash [32]byte) *ConsensusState {
	return &ConsensusState{
		Timestamp:          timestamp,
		Root:               root,
		NextValidatorsHash: nextValsHash,
	}
}

// GetTimestamp returns block time in nanoseconds of the header that created consensus state
func (cs ConsensusState) GetTimestamp() uint64 {
	return uint64(cs.Timestamp.UnixNano())
}

// ValidateBasic defines a basic validation for the tendermint consensus state.
// The root may be zero: chains report an empty app hash before their first
// committed block.
func (cs ConsensusState) ValidateBasic() error {
	if cs.NextValidatorsHash == ([32]byte{}) {
		return errorsmod.Wrap(ErrInvalidValidatorSet, "next validators hash cannot be empty")
	}
	if cs.Timestamp.Unix() <= 0 {
		return errorsmod.Wrap(ErrInvalidTimestamp, "timestamp must be a positive Unix time")
	}
	return nil
}
