package tendermint

import (
	errorsmod "cosmossdk.io/errors"
)

const ModuleName = "07-tendermint-sp1"

// IBC tendermint client sentinel errors
var (
	ErrInvalidChainID         = errorsmod.Register(ModuleName, 2, "invalid chain-id")
	ErrInvalidTrustingPeriod  = errorsmod.Register(ModuleName, 3, "invalid trusting period")
	ErrInvalidUnbondingPeriod = errorsmod.Register(ModuleName, 4, "invalid unbonding period")
	ErrInvalidHeaderHeight    = errorsmod.Register(ModuleName, 5, "invalid header height")
	ErrInvalidTrustLevel      = errorsmod.Register(ModuleName, 6, "invalid trust level")
	ErrInvalidTimestamp       = errorsmod.Register(ModuleName, 7, "invalid consensus state timestamp")
	ErrInvalidValidatorSet    = errorsmod.Register(ModuleName, 8, "invalid validator set")
)
