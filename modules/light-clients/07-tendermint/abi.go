package tendermint

import (
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
	clienttypes "github.com/SecretSaturn/sp1-ics07-tendermint/modules/core/02-client/types"
)

var (
	heightComponents = []abi.ArgumentMarshaling{
		{Name: "revisionNumber", Type: "uint64"},
		{Name: "revisionHeight", Type: "uint64"},
	}

	clientStateType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "chainId", Type: "string"},
		{Name: "trustLevel", Type: "tuple", Components: []abi.ArgumentMarshaling{
			{Name: "numerator", Type: "uint64"},
			{Name: "denominator", Type: "uint64"},
		}},
		{Name: "latestHeight", Type: "tuple", Components: heightComponents},
		{Name: "isFrozen", Type: "bool"},
		{Name: "trustingPeriod", Type: "uint64"},
		{Name: "unbondingPeriod", Type: "uint64"},
	})

	consensusStateType, _ = abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "timestamp", Type: "uint64"},
		{Name: "root", Type: "bytes32"},
		{Name: "nextValidatorsHash", Type: "bytes32"},
	})

	// Each state is a single tuple argument, i.e. Solidity abi.encode(state).
	clientStateArgs    = abi.Arguments{{Name: "clientState", Type: clientStateType}}
	consensusStateArgs = abi.Arguments{{Name: "consensusState", Type: consensusStateType}}
)

// ABITrustThreshold is the ABI-compatible representation of Fraction.
type ABITrustThreshold struct {
	Numerator   uint64
	Denominator uint64
}

// ABIHeight is the ABI-compatible representation of clienttypes.Height.
type ABIHeight struct {
	RevisionNumber uint64
	RevisionHeight uint64
}

// ABIClientState is the ABI-compatible representation of ClientState.
// Durations are expressed in nanoseconds.
type ABIClientState struct {
	ChainId         string
	TrustLevel      ABITrustThreshold
	LatestHeight    ABIHeight
	IsFrozen        bool
	TrustingPeriod  uint64
	UnbondingPeriod uint64
}

// ABIConsensusState is the ABI-compatible representation of ConsensusState.
// Timestamp is expressed in Unix nanoseconds.
type ABIConsensusState struct {
	Timestamp          uint64
	Root               [32]byte
	NextValidatorsHash [32]byte
}

// ABIEncode encodes the client state in the layout expected by the on-chain
// verifier. This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (cs *ClientState) ABIEncode() ([]byte, error) {
	latestHeight := cs.GetLatestHeight()
	encoded, err := clientStateArgs.Pack(ABIClientState{
		ChainId: cs.GetChainID(),
		TrustLevel: ABITrustThreshold{
			Numerator:   cs.TrustLevel.Numerator,
			Denominator: cs.TrustLevel.Denominator,
		},
		LatestHeight: ABIHeight{
			RevisionNumber: latestHeight.GetRevisionNumber(),
			RevisionHeight: latestHeight.GetRevisionHeight(),
		},
		IsFrozen:        cs.IsFrozen,
		TrustingPeriod:  uint64(cs.TrustingPeriod.Nanoseconds()),
		UnbondingPeriod: uint64(cs.UnbondingPeriod.Nanoseconds()),
	})
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiEncoding, "failed to pack client state: %s", err)
	}

	return encoded, nil
}

// ABIEncode encodes the consensus state in the layout expected by the on-chain
// verifier. This type uses ABI encoding (not Protobuf) for cross-platform compatibility.
func (cs *ConsensusState) ABIEncode() ([]byte, error) {
	encoded, err := consensusStateArgs.Pack(ABIConsensusState{
		Timestamp:          cs.GetTimestamp(),
		Root:               cs.Root,
		NextValidatorsHash: cs.NextValidatorsHash,
	})
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiEncoding, "failed to pack consensus state: %s", err)
	}

	return encoded, nil
}

// ABIDecodeClientState decodes a solidity ABI encoded client state.
func ABIDecodeClientState(data []byte) (*ClientState, error) {
	unpacked, err := clientStateArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiDecoding, "failed to unpack client state: %s", err)
	}

	if len(unpacked) != 1 {
		return nil, errorsmod.Wrap(ibcerrors.ErrAbiDecoding, "invalid client state: expected a single tuple")
	}

	var decoded ABIClientState
	if err := clientStateArgs.Copy(&struct{ State *ABIClientState }{&decoded}, unpacked); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiDecoding, "failed to parse client state: %s", err)
	}

	return &ClientState{
		ChainId: decoded.ChainId,
		TrustLevel: Fraction{
			Numerator:   decoded.TrustLevel.Numerator,
			Denominator: decoded.TrustLevel.Denominator,
		},
		LatestHeight:    clienttypes.NewHeight(decoded.LatestHeight.RevisionNumber, decoded.LatestHeight.RevisionHeight),
		IsFrozen:        decoded.IsFrozen,
		TrustingPeriod:  time.Duration(decoded.TrustingPeriod),
		UnbondingPeriod: time.Duration(decoded.UnbondingPeriod),
	}, nil
}

// ABIDecodeConsensusState decodes a solidity ABI encoded consensus state.
func ABIDecodeConsensusState(data []byte) (*ConsensusState, error) {
	unpacked, err := consensusStateArgs.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiDecoding, "failed to unpack consensus state: %s", err)
	}

	if len(unpacked) != 1 {
		return nil, errorsmod.Wrap(ibcerrors.ErrAbiDecoding, "invalid consensus state: expected a single tuple")
	}

	var decoded ABIConsensusState
	if err := consensusStateArgs.Copy(&struct{ State *ABIConsensusState }{&decoded}, unpacked); err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiDecoding, "failed to parse consensus state: %s", err)
	}

	return NewConsensusState(
		time.Unix(0, int64(decoded.Timestamp)).UTC(),
		decoded.Root,
		decoded.NextValidatorsHash,
	), nil
}

// EncodeHex returns the lower-case hex encoding of bz without a 0x prefix.
func EncodeHex(bz []byte) string {
	return common.Bytes2Hex(bz)
}

// DecodeHex is the inverse of EncodeHex.
func DecodeHex(s string) ([]byte, error) {
	bz, err := hexutil.Decode("0x" + s)
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrAbiDecoding, "invalid hex string: %s", err)
	}
	return bz, nil
}

// BytesToBytes32 copies b into a 32 byte array, right padding with zeroes.
func BytesToBytes32(b []byte) [32]byte {
	var result [32]byte
	copy(result[:], b)
	return result
}
